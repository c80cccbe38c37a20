package estimation

import (
	"fmt"
	"math"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

const (
	// DefaultLotDurationDays is used when neither the lot nor the catalog give a duration.
	DefaultLotDurationDays = 5
	// MaxDurationRatio derives the max bound of a lot duration from its min bound.
	MaxDurationRatio   = 1.5
	WorkingDaysPerWeek = 5

	BaseParallelization          = 0.7
	LargeAreaParallelization     = 0.6
	VeryLargeAreaParallelization = 0.5
	LargeAreaSqm                 = 150.0
	VeryLargeAreaSqm             = 300.0

	// FewLotsThreshold is the lot count below which trades run closer to sequentially.
	FewLotsThreshold       = 5
	FewLotsParallelization = 0.2
	MaxParallelization     = 0.9
)

// Phase is one step of the fixed execution schedule.
type Phase struct {
	ID             string
	Name           string
	Lots           []catalog.LotType
	CanParallelize bool
}

var phases = []Phase{
	{
		ID: "preparation", Name: "Preparation and demolition",
		Lots: []catalog.LotType{catalog.Demolition, catalog.WasteRemoval, catalog.Scaffolding},
	},
	{
		ID: "structural", Name: "Structural work",
		Lots: []catalog.LotType{
			catalog.StructuralWork, catalog.Masonry, catalog.Earthworks,
			catalog.Foundations, catalog.Framing, catalog.Roofing,
		},
	},
	{
		ID: "technical", Name: "Technical trades",
		Lots: []catalog.LotType{
			catalog.Plumbing, catalog.Electrical, catalog.Heating,
			catalog.Ventilation, catalog.AirConditioning,
		},
		CanParallelize: true,
	},
	{
		ID: "secondary", Name: "Secondary work",
		Lots: []catalog.LotType{
			catalog.ThermalInsulation, catalog.Partitions,
			catalog.InteriorJoinery, catalog.ExteriorJoinery,
		},
		CanParallelize: true,
	},
	{
		ID: "finishes", Name: "Finishes",
		Lots: []catalog.LotType{
			catalog.Tiling, catalog.Flooring, catalog.Painting,
			catalog.WallCoverings, catalog.Ceilings,
		},
		CanParallelize: true,
	},
	{
		ID: "equipment", Name: "Equipment",
		Lots: []catalog.LotType{
			catalog.FittedKitchen, catalog.Bathroom,
			catalog.HomeAutomation, catalog.Security,
		},
		CanParallelize: true,
	},
	{
		ID: "exterior", Name: "Exterior works",
		Lots: []catalog.LotType{
			catalog.Facades, catalog.Landscaping,
			catalog.Fencing, catalog.SwimmingPool,
		},
		CanParallelize: true,
	},
	{
		ID: "final_cleaning", Name: "Final cleaning",
		Lots: []catalog.LotType{catalog.FinalCleaning},
	},
}

// Phases returns the execution schedule in order.
func Phases() []Phase {
	res := make([]Phase, len(phases))
	for i, p := range phases {
		p.Lots = append([]catalog.LotType(nil), p.Lots...)
		res[i] = p
	}
	return res
}

func phaseOf(t catalog.LotType) (int, bool) {
	for i, p := range phases {
		for _, l := range p.Lots {
			if l == t {
				return i, true
			}
		}
	}
	return 0, false
}

// EstimateDuration groups lots into phases and sums the phase durations,
// shortening the parallelizable phases by the parallelization factor.
func (e *Engine) EstimateDuration(lots []SelectedLot, property *PropertyAttributes, workProject *WorkProjectAttributes, coefficients Coefficients) (DurationEstimation, []string) {
	warnings := make([]string, 0)
	if len(lots) == 0 {
		return NewEmptyEstimation(nil).Duration, append(warnings, "No lots selected: duration cannot be estimated")
	}

	coef := coefficients.Duration
	if coef <= 0 {
		coef = 1
	}

	grouped := make([][]SelectedLot, len(phases))
	for _, lot := range lots {
		i, ok := phaseOf(lot.Type)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Lot %q does not belong to any phase and is not scheduled", lot.Type))
			continue
		}
		grouped[i] = append(grouped[i], lot)
	}

	parallelization := parallelizationFactor(len(lots), property)

	res := DurationEstimation{
		Phases:          make([]PhaseEstimation, 0, len(phases)),
		Parallelization: parallelization,
	}

	var total EstimationRange
	for i, phaseLots := range grouped {
		if len(phaseLots) == 0 {
			continue
		}
		pe := PhaseEstimation{
			Phase:          phases[i].ID,
			Name:           phases[i].Name,
			Lots:           make([]catalog.LotType, 0, len(phaseLots)),
			CanParallelize: phases[i].CanParallelize,
		}
		for _, lot := range phaseLots {
			d, warning := e.lotDurationDays(lot)
			if warning != "" {
				warnings = append(warnings, warning)
			}
			days := float64(d)
			pe.Lots = append(pe.Lots, lot.Type)
			pe.DurationDays = pe.DurationDays.Add(EstimationRange{Min: days, Max: days * MaxDurationRatio})
		}
		pe.DurationDays = EstimationRange{Min: math.Round(pe.DurationDays.Min), Max: math.Round(pe.DurationDays.Max)}
		res.Phases = append(res.Phases, pe)

		if pe.CanParallelize {
			total = total.Add(EstimationRange{Min: pe.DurationDays.Min * parallelization, Max: pe.DurationDays.Max * parallelization})
		} else {
			total = total.Add(pe.DurationDays)
		}
	}

	res.TotalDays = EstimationRange{Min: math.Round(total.Min * coef), Max: math.Round(total.Max * coef)}
	res.TotalWeeks = EstimationRange{
		Min: math.Ceil(res.TotalDays.Min / WorkingDaysPerWeek),
		Max: math.Ceil(res.TotalDays.Max / WorkingDaysPerWeek),
	}
	res.CriticalPath = e.criticalPath(lots)
	return res, warnings
}

// lotDurationDays returns the override, the catalog duration or DefaultLotDurationDays, in that order.
// The warning is set when a non-positive override was ignored.
func (e *Engine) lotDurationDays(lot SelectedLot) (int, string) {
	var warning string
	if o := lot.EstimatedDurationDays; o != nil {
		if *o > 0 {
			return *o, ""
		}
		warning = fmt.Sprintf("Duration override of lot %q is not positive (%d days) and was ignored", lot.Type, *o)
	}
	if entry, ok := e.catalog.Lookup(lot.Type); ok && entry.TypicalDurationDays > 0 {
		return entry.TypicalDurationDays, warning
	}
	return DefaultLotDurationDays, warning
}

// parallelizationFactor returns a value in [0.5, 0.9].
func parallelizationFactor(lotCount int, property *PropertyAttributes) float64 {
	factor := BaseParallelization
	if area, ok := property.LivingArea(); ok {
		switch {
		case area > VeryLargeAreaSqm:
			factor = VeryLargeAreaParallelization
		case area > LargeAreaSqm:
			factor = LargeAreaParallelization
		}
	}
	if lotCount < FewLotsThreshold {
		factor = math.Min(factor+FewLotsParallelization, MaxParallelization)
	}
	return round2(factor)
}

// criticalPath lists the selected lots whose catalog prerequisites are also selected.
func (e *Engine) criticalPath(lots []SelectedLot) []CriticalPathItem {
	selected := make(map[catalog.LotType]bool, len(lots))
	for _, lot := range lots {
		selected[lot.Type] = true
	}

	res := make([]CriticalPathItem, 0)
	for _, lot := range lots {
		entry, ok := e.catalog.Lookup(lot.Type)
		if !ok {
			continue
		}
		deps := make([]catalog.LotType, 0, len(entry.Dependencies))
		for _, d := range entry.Dependencies {
			if selected[d] {
				deps = append(deps, d)
			}
		}
		if len(deps) == 0 {
			continue
		}
		days, _ := e.lotDurationDays(lot)
		res = append(res, CriticalPathItem{
			LotType:      lot.Type,
			DurationDays: days,
			Dependencies: deps,
		})
	}
	return res
}
