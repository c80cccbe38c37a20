package adjustments

import (
	"math"

	"github.com/renovplan/renovation-planner/internal/estimation"
)

// Default returns the standard adjustments in the order their factors are listed.
func Default() []estimation.Adjustment {
	return []estimation.Adjustment{
		NewRegional(),
		NewPropertyType(),
		NewFinishLevel(),
		NewBuildingAge(),
		NewHeritage(),
		NewCondo(),
		NewUrgency(),
	}
}

// NewFactor describes a coefficient. Percentage is signed: positive for an increase, negative for a decrease.
func NewFactor(code, name string, coefficient float64, description string) *estimation.EstimationFactor {
	impact := estimation.ImpactNeutral
	switch {
	case coefficient > 1:
		impact = estimation.ImpactIncrease
	case coefficient < 1:
		impact = estimation.ImpactDecrease
	}
	return &estimation.EstimationFactor{
		Code:        code,
		Name:        name,
		Impact:      impact,
		Percentage:  int(math.Round((coefficient - 1) * 100)),
		Description: description,
	}
}

// effect builds an Effect that only carries a factor when the coefficient is not neutral.
func effect(budget, duration, reported float64, code, name, description string) estimation.Effect {
	res := estimation.Effect{Budget: budget, Duration: duration}
	if reported != 1 {
		res.Factor = NewFactor(code, name, reported, description)
	}
	return res
}
