package adjustments

import (
	"fmt"

	"github.com/renovplan/renovation-planner/internal/estimation"
)

var DefaultFinishLevelTable = map[estimation.FinishLevel]float64{
	estimation.FinishLevelBasic:    0.8,
	estimation.FinishLevelStandard: 1.0,
	estimation.FinishLevelPremium:  1.3,
	estimation.FinishLevelLuxury:   1.6,
}

const DefaultUrgencyBudgetCoefficient = 1.15

var (
	_ estimation.Adjustment = (*FinishLevel)(nil)
	_ estimation.Adjustment = (*Urgency)(nil)
)

// FinishLevel adjusts the budget to the quality of materials. It does not change the duration.
// Unknown levels are priced as standard.
type FinishLevel struct {
	table map[estimation.FinishLevel]float64
}

type FinishLevelOption func(*FinishLevel)

func WithFinishLevelTable(table map[estimation.FinishLevel]float64) FinishLevelOption {
	return func(f *FinishLevel) {
		f.table = table
	}
}

func NewFinishLevel(opts ...FinishLevelOption) *FinishLevel {
	f := &FinishLevel{table: DefaultFinishLevelTable}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *FinishLevel) Name() string { return estimation.FactorFinishLevel }

func (f *FinishLevel) Apply(_ *estimation.PropertyAttributes, workProject *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if workProject == nil || workProject.FinishLevel == "" {
		return estimation.Effect{}, false
	}
	c, ok := f.table[workProject.FinishLevel]
	if !ok {
		return estimation.Effect{
			Warning: fmt.Sprintf("Finish level %q is unknown: the standard finish level is used", workProject.FinishLevel),
		}, true
	}
	return effect(c, 1, c, estimation.FactorFinishLevel, "Finish level",
		fmt.Sprintf("%s finish level", workProject.FinishLevel)), true
}

// Urgency prices the premium asked by contractors for urgent works.
type Urgency struct {
	budget float64
}

type UrgencyOption func(*Urgency)

func WithUrgencyBudgetCoefficient(c float64) UrgencyOption {
	return func(u *Urgency) {
		u.budget = c
	}
}

func NewUrgency(opts ...UrgencyOption) *Urgency {
	u := &Urgency{budget: DefaultUrgencyBudgetCoefficient}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Urgency) Name() string { return estimation.FactorUrgency }

func (u *Urgency) Apply(_ *estimation.PropertyAttributes, workProject *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if workProject == nil || !workProject.IsUrgent {
		return estimation.Effect{}, false
	}
	return effect(u.budget, 1, u.budget, estimation.FactorUrgency, "Urgent works",
		"Contractors charge a premium for short notice works"), true
}
