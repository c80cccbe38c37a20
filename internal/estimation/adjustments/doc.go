// Package adjustments provides concrete Adjustment implementations for the estimation engine.
//
// Each adjustment turns one attribute of the property or of the work project (postal code, property
// type, finish level, construction year, heritage and condo flags, urgency) into a budget and/or
// duration coefficient. Adjustments are composed via estimation.Engine; their lookup tables can be
// overridden with options.
package adjustments
