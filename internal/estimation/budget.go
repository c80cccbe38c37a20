package estimation

import (
	"fmt"
	"math"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

const (
	// DefaultLivingAreaSqm is used for surface-priced lots when the living area is unknown.
	DefaultLivingAreaSqm = 100.0
	DefaultRoomCount     = 5
	DefaultBathroomCount = 1

	BaseContingencyRate       = 0.08
	OldBuildingContingencyAdd = 0.05
	StructuralContingencyAdd  = 0.03
	// ContingencySpread is added to the contingency rate for the max bound.
	ContingencySpread = 0.05
	// OldBuildingYear is the first construction year not considered old.
	OldBuildingYear = 1975

	ArchitectAreaThresholdSqm = 150.0
	ArchitectFeeMinRate       = 0.08
	ArchitectFeeMaxRate       = 0.10
	CoordinationFeeMinRate    = 0.02
	CoordinationFeeMaxRate    = 0.04
	BuildingPermitFee         = 2000.0
	DeclarationFee            = 500.0
)

var (
	// FallbackLotBudget prices a lot missing from the catalog.
	FallbackLotBudget = EstimationRange{Min: 5000, Max: 15000}
	InsuranceFee      = EstimationRange{Min: 500, Max: 1500}
	OtherFees         = EstimationRange{Min: 500, Max: 2000}

	// structuralLots raise the contingency rate.
	structuralLots = map[catalog.LotType]bool{
		catalog.StructuralWork: true,
		catalog.Framing:        true,
		catalog.Foundations:    true,
		catalog.Demolition:     true,
	}
)

// EstimateBudget prices every lot and adds contingency and fees.
// An empty lot list yields the zero estimation and a warning.
func (e *Engine) EstimateBudget(lots []SelectedLot, property *PropertyAttributes, workProject *WorkProjectAttributes, coefficients Coefficients) (BudgetEstimation, []string) {
	warnings := make([]string, 0)
	if len(lots) == 0 {
		return NewEmptyEstimation(nil).Budget, append(warnings, "No lots selected: budget cannot be estimated")
	}

	coef := coefficients.Budget
	if coef <= 0 {
		coef = 1
	}

	area, areaKnown := property.LivingArea()
	if !areaKnown {
		area = DefaultLivingAreaSqm
	}

	res := BudgetEstimation{ByLot: make([]LotBudgetEstimation, 0, len(lots))}
	surfaceDefaulted := false
	for _, lot := range lots {
		lb, lotWarnings := e.estimateLotBudget(lot, property, area, coef)
		warnings = append(warnings, lotWarnings...)
		if lb.Basis == BasisSurface && !areaKnown {
			surfaceDefaulted = true
		}
		res.ByLot = append(res.ByLot, lb)
		res.Subtotal = res.Subtotal.Add(lb.Estimate)
	}
	if surfaceDefaulted {
		warnings = append(warnings, fmt.Sprintf("Living area unknown: surface-priced lots assume %.0f m²", DefaultLivingAreaSqm))
	}

	res.ByCategory = aggregateByCategory(res.ByLot, res.Subtotal)

	rate := contingencyRate(lots, property)
	res.ContingencyRate = EstimationRange{Min: round2(rate), Max: round2(rate + ContingencySpread)}
	res.Contingency = EstimationRange{
		Min: math.Round(res.Subtotal.Min * rate),
		Max: math.Round(res.Subtotal.Max * (rate + ContingencySpread)),
	}

	res.Fees = estimateFees(res.Subtotal, area, workProject)

	res.Total = res.Subtotal.Add(res.Contingency).Add(res.Fees.Total())
	return res, warnings
}

func (e *Engine) estimateLotBudget(lot SelectedLot, property *PropertyAttributes, area, coef float64) (LotBudgetEstimation, []string) {
	entry, inCatalog := e.catalog.Lookup(lot.Type)
	res := LotBudgetEstimation{
		LotType:  lot.Type,
		LotName:  lotName(lot, entry, inCatalog),
		Category: lotCategory(lot, entry, inCatalog),
	}

	var warnings []string
	if lot.EstimatedBudget != nil {
		if lot.EstimatedBudget.valid() {
			res.Estimate = scale(*lot.EstimatedBudget, coef)
			res.Basis = BasisCustom
			return res, nil
		}
		warnings = append(warnings, fmt.Sprintf("Budget override of lot %q is invalid (min %.0f, max %.0f) and was ignored",
			lot.Type, lot.EstimatedBudget.Min, lot.EstimatedBudget.Max))
	}

	if !inCatalog {
		res.Estimate = FallbackLotBudget
		res.Basis = BasisDefault
		return res, append(warnings, fmt.Sprintf("Lot %q is not in the catalog: a default range of %.0f-%.0f EUR is used",
			lot.Type, FallbackLotBudget.Min, FallbackLotBudget.Max))
	}

	base := EstimationRange{Min: entry.BasePrice.Min, Max: entry.BasePrice.Max}
	if entry.SurfacePriced() {
		res.Estimate = scale(base, area*coef)
		res.Basis = BasisSurface
		return res, warnings
	}

	res.Estimate = scale(base, unitMultiplier(lot.Type, property)*coef)
	res.Basis = BasisCatalog
	return res, warnings
}

// unitMultiplier scales a per-unit or flat price with the property size.
func unitMultiplier(t catalog.LotType, property *PropertyAttributes) float64 {
	rooms := float64(property.rooms())
	switch t {
	case catalog.Plumbing:
		return float64(property.bathrooms() + 1)
	case catalog.Electrical, catalog.InteriorJoinery:
		return rooms
	case catalog.ExteriorJoinery, catalog.AirConditioning:
		return math.Ceil(rooms * 0.5)
	case catalog.Bathroom:
		return float64(property.bathrooms())
	case catalog.Heating:
		return math.Ceil(rooms * 0.7)
	default:
		return 1
	}
}

func lotName(lot SelectedLot, entry catalog.Entry, inCatalog bool) string {
	switch {
	case lot.Name != "":
		return lot.Name
	case inCatalog:
		return entry.Name
	default:
		return string(lot.Type)
	}
}

func lotCategory(lot SelectedLot, entry catalog.Entry, inCatalog bool) catalog.Category {
	switch {
	case lot.Category.IsValid():
		return lot.Category
	case inCatalog:
		return entry.Category
	default:
		return catalog.CategorySpecial
	}
}

func aggregateByCategory(byLot []LotBudgetEstimation, subtotal EstimationRange) []CategoryBudgetEstimation {
	sums := make(map[catalog.Category]EstimationRange)
	for _, lb := range byLot {
		sums[lb.Category] = sums[lb.Category].Add(lb.Estimate)
	}

	res := make([]CategoryBudgetEstimation, 0, len(sums))
	for _, cat := range catalog.Categories() {
		sum, ok := sums[cat]
		if !ok || sum.IsZero() {
			continue
		}
		percentage := 0
		if subtotal.Max > 0 {
			percentage = int(math.Round(sum.Max / subtotal.Max * 100))
		}
		res = append(res, CategoryBudgetEstimation{
			Category:     cat,
			CategoryName: cat.DisplayName(),
			Estimate:     sum,
			Percentage:   percentage,
		})
	}
	return res
}

func contingencyRate(lots []SelectedLot, property *PropertyAttributes) float64 {
	rate := BaseContingencyRate
	if year, ok := property.ConstructionYear(); ok && year < OldBuildingYear {
		rate += OldBuildingContingencyAdd
	}
	for _, lot := range lots {
		if structuralLots[lot.Type] {
			rate += StructuralContingencyAdd
			break
		}
	}
	return rate
}

func estimateFees(subtotal EstimationRange, area float64, workProject *WorkProjectAttributes) FeesEstimation {
	var fees FeesEstimation

	architect := area > ArchitectAreaThresholdSqm
	permit := DeclarationFee
	if workProject != nil {
		if workProject.RequiresArchitect != nil && *workProject.RequiresArchitect {
			architect = true
		}
		if workProject.DeclarationType == DeclarationBuildingPermit {
			permit = BuildingPermitFee
		}
	}
	if architect {
		fees.Architect = EstimationRange{
			Min: math.Round(subtotal.Min * ArchitectFeeMinRate),
			Max: math.Round(subtotal.Max * ArchitectFeeMaxRate),
		}
	}

	fees.Permits = EstimationRange{Min: permit, Max: 2 * permit}
	fees.Insurance = InsuranceFee
	fees.Coordination = EstimationRange{
		Min: math.Round(subtotal.Min * CoordinationFeeMinRate),
		Max: math.Round(subtotal.Max * CoordinationFeeMaxRate),
	}
	fees.Other = OtherFees
	return fees
}

// BudgetPerSqm divides the total budget by the living area (default 100 m²).
func BudgetPerSqm(budget EstimationRange, property *PropertyAttributes) EstimationRange {
	area, ok := property.LivingArea()
	if !ok {
		area = DefaultLivingAreaSqm
	}
	return EstimationRange{Min: math.Round(budget.Min / area), Max: math.Round(budget.Max / area)}
}

func scale(r EstimationRange, k float64) EstimationRange {
	return EstimationRange{Min: math.Round(r.Min * k), Max: math.Round(r.Max * k)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
