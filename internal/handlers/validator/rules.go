package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewProjectValidationRules returns the rules of the project and snapshot forms.
// Lot types are checked against cat, or catalog.Default() when cat is nil.
func NewProjectValidationRules(cat *catalog.Catalog) []ValidationRule {
	if cat == nil {
		cat = catalog.Default()
	}
	return []ValidationRule{
		{
			Rule: registerFn("lot_type", lotTypeValidator(cat)),
		},
		{
			Rule: registerFn("finish_level", finishLevelValidator),
		},
		{
			Rule: registerFn("postal_code", postalCodeValidator),
		},
		{
			Rule: registerFn("property_type", propertyTypeValidator),
		},
		{
			Rule: registerFn("range", rangeValidator),
		},
	}
}
