package estimation

import (
	"fmt"
	"time"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

// Adjustment derives one multiplicative coefficient from the property and
// work project attributes.
type Adjustment interface {
	// Name is unique among the adjustments registered on an Engine.
	Name() string
	// Apply returns false when the attributes it reads are missing.
	Apply(property *PropertyAttributes, workProject *WorkProjectAttributes) (Effect, bool)
}

// Effect is the contribution of one Adjustment. A coefficient <= 0 is neutral.
// Warning is set when a malformed attribute was replaced by its default.
type Effect struct {
	Budget   float64
	Duration float64
	Factor   *EstimationFactor
	Warning  string
}

// Engine orchestrates Adjustment objects and the budget and duration estimators.
// An Engine is safe for concurrent use once all adjustments are registered.
type Engine struct {
	catalog     *catalog.Catalog
	adjustments []Adjustment
	now         func() time.Time
}

type EngineOption func(*Engine)

// WithAdjustments registers adjustments in the given order.
func WithAdjustments(adjustments ...Adjustment) EngineOption {
	return func(e *Engine) {
		for _, a := range adjustments {
			e.Register(a)
		}
	}
}

// WithClock sets the clock used for ProjectEstimation.ComputedAt.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine pricing lots with cat, or with catalog.Default() when cat is nil.
// No adjustment is registered unless given with WithAdjustments.
func NewEngine(cat *catalog.Catalog, opts ...EngineOption) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	e := &Engine{
		catalog:     cat,
		adjustments: make([]Adjustment, 0),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds an Adjustment to the coefficient computation.
// Adjustments are applied in the order they are registered, which only
// decides the order of the emitted factors.
// Register panics if an adjustment with the same Name() is already registered.
func (e *Engine) Register(a Adjustment) {
	for _, existing := range e.adjustments {
		if existing.Name() == a.Name() {
			panic(fmt.Sprintf("estimation: adjustment %q already registered", a.Name()))
		}
	}
	e.adjustments = append(e.adjustments, a)
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ComputeCoefficients composes every registered adjustment.
func (e *Engine) ComputeCoefficients(property *PropertyAttributes, workProject *WorkProjectAttributes) Coefficients {
	res := Coefficients{Budget: 1, Duration: 1, Factors: make([]EstimationFactor, 0), Warnings: make([]string, 0)}
	for _, a := range e.adjustments {
		effect, ok := a.Apply(property, workProject)
		if !ok {
			continue
		}
		if effect.Warning != "" {
			res.Warnings = append(res.Warnings, effect.Warning)
		}
		if effect.Budget > 0 {
			res.Budget *= effect.Budget
		}
		if effect.Duration > 0 {
			res.Duration *= effect.Duration
		}
		if effect.Factor != nil {
			res.Factors = append(res.Factors, *effect.Factor)
		}
	}
	return res
}

// EstimateProject is the single entry point of the engine. It never fails:
// missing inputs degrade to documented defaults and are reported as warnings.
func (e *Engine) EstimateProject(project Project) ProjectEstimation {
	if len(project.SelectedLots) == 0 {
		warnings := []string{"No lots selected: nothing to estimate"}
		if project.Property == nil {
			warnings = append(warnings, "No property information provided")
		}
		res := NewEmptyEstimation(warnings)
		res.ComputedAt = e.now()
		return res
	}

	warnings := make([]string, 0)
	if project.Property == nil {
		warnings = append(warnings, "No property information provided: default living area and room counts are used")
	}

	warnings = append(warnings, propertyWarnings(project.Property)...)

	coefficients := e.ComputeCoefficients(project.Property, project.WorkProject)
	warnings = append(warnings, coefficients.Warnings...)

	budget, budgetWarnings := e.EstimateBudget(project.SelectedLots, project.Property, project.WorkProject, coefficients)
	warnings = append(warnings, budgetWarnings...)

	duration, durationWarnings := e.EstimateDuration(project.SelectedLots, project.Property, project.WorkProject, coefficients)
	warnings = append(warnings, durationWarnings...)

	return ProjectEstimation{
		Budget:     budget,
		Duration:   duration,
		Confidence: ScoreConfidence(project, coefficients.Factors),
		Factors:    coefficients.Factors,
		Warnings:   warnings,
		ComputedAt: e.now(),
	}
}

// propertyWarnings reports the property sizes that are present but not positive.
func propertyWarnings(p *PropertyAttributes) []string {
	if p == nil {
		return nil
	}
	var warnings []string
	if p.LivingAreaSqm != nil && *p.LivingAreaSqm <= 0 {
		warnings = append(warnings, fmt.Sprintf("Living area %g m² is not positive and was ignored", *p.LivingAreaSqm))
	}
	if p.RoomCount != nil && *p.RoomCount <= 0 {
		warnings = append(warnings, fmt.Sprintf("Room count %d is not positive: %d rooms are assumed", *p.RoomCount, DefaultRoomCount))
	}
	if p.BathroomCount != nil && *p.BathroomCount <= 0 {
		warnings = append(warnings, fmt.Sprintf("Bathroom count %d is not positive: %d bathroom is assumed", *p.BathroomCount, DefaultBathroomCount))
	}
	return warnings
}

// NewEmptyEstimation returns the estimation of a project without lots.
func NewEmptyEstimation(warnings []string) ProjectEstimation {
	if warnings == nil {
		warnings = make([]string, 0)
	}
	return ProjectEstimation{
		Budget: BudgetEstimation{
			ByLot:      make([]LotBudgetEstimation, 0),
			ByCategory: make([]CategoryBudgetEstimation, 0),
		},
		Duration: DurationEstimation{
			Phases:          make([]PhaseEstimation, 0),
			CriticalPath:    make([]CriticalPathItem, 0),
			Parallelization: 1,
		},
		Confidence: 0,
		Factors:    make([]EstimationFactor, 0),
		Warnings:   warnings,
	}
}
