package adjustments

import (
	"fmt"

	"github.com/renovplan/renovation-planner/internal/estimation"
)

var DefaultPropertyTypeTable = map[estimation.PropertyType]float64{
	estimation.PropertyTypeApartment:  1.0,
	estimation.PropertyTypeHouse:      1.1,
	estimation.PropertyTypeVilla:      1.2,
	estimation.PropertyTypeLoft:       1.15,
	estimation.PropertyTypeStudio:     0.95,
	estimation.PropertyTypeBuilding:   1.3,
	estimation.PropertyTypeCommercial: 1.2,
	estimation.PropertyTypeOffice:     1.1,
	estimation.PropertyTypeWarehouse:  0.9,
	estimation.PropertyTypeLand:       0.7,
	estimation.PropertyTypeOther:      1.0,
}

// Era is a construction period. Before is exclusive; 0 means no upper bound.
type Era struct {
	Before      int
	Coefficient float64
	Label       string
}

// DefaultEras must be sorted by Before, the open-ended era last.
var DefaultEras = []Era{
	{Before: 1948, Coefficient: 1.25, Label: "before 1948"},
	{Before: 1975, Coefficient: 1.15, Label: "1948-1974"},
	{Before: 2000, Coefficient: 1.05, Label: "1975-1999"},
	{Before: 2013, Coefficient: 1.0, Label: "2000-2012"},
	{Before: 0, Coefficient: 0.95, Label: "2013 or later"},
}

const (
	DefaultHeritageBudgetCoefficient   = 1.4
	DefaultHeritageDurationCoefficient = 1.3
	DefaultCondoDurationCoefficient    = 1.15
)

var (
	_ estimation.Adjustment = (*PropertyType)(nil)
	_ estimation.Adjustment = (*BuildingAge)(nil)
	_ estimation.Adjustment = (*Heritage)(nil)
	_ estimation.Adjustment = (*Condo)(nil)
)

// PropertyType adjusts budget and duration to the kind of property. Unknown types are neutral and reported as a warning.
type PropertyType struct {
	table map[estimation.PropertyType]float64
}

type PropertyTypeOption func(*PropertyType)

func WithPropertyTypeTable(table map[estimation.PropertyType]float64) PropertyTypeOption {
	return func(p *PropertyType) {
		p.table = table
	}
}

func NewPropertyType(opts ...PropertyTypeOption) *PropertyType {
	p := &PropertyType{table: DefaultPropertyTypeTable}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PropertyType) Name() string { return estimation.FactorPropertyType }

func (p *PropertyType) Apply(property *estimation.PropertyAttributes, _ *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if property == nil || property.PropertyType == "" {
		return estimation.Effect{}, false
	}
	c, ok := p.table[property.PropertyType]
	if !ok {
		return estimation.Effect{
			Warning: fmt.Sprintf("Property type %q is unknown: no type adjustment is applied", property.PropertyType),
		}, true
	}
	return effect(c, c, c, estimation.FactorPropertyType, "Property type",
		fmt.Sprintf("Works on a %s", property.PropertyType)), true
}

// BuildingAge adjusts budget and duration to the construction era of the building.
type BuildingAge struct {
	eras []Era
}

type BuildingAgeOption func(*BuildingAge)

// WithEras replaces the construction eras. eras must be sorted by Before with the open-ended era last.
func WithEras(eras []Era) BuildingAgeOption {
	return func(b *BuildingAge) {
		b.eras = eras
	}
}

func NewBuildingAge(opts ...BuildingAgeOption) *BuildingAge {
	b := &BuildingAge{eras: DefaultEras}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *BuildingAge) Name() string { return estimation.FactorBuildingAge }

func (b *BuildingAge) Apply(property *estimation.PropertyAttributes, _ *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if property != nil && property.YearBuilt != nil && *property.YearBuilt <= 0 {
		return estimation.Effect{
			Warning: fmt.Sprintf("Construction year %d is not positive: no age adjustment is applied", *property.YearBuilt),
		}, true
	}
	year, ok := property.ConstructionYear()
	if !ok {
		return estimation.Effect{}, false
	}
	era, ok := b.eraOf(year)
	if !ok {
		return estimation.Effect{}, false
	}
	return effect(era.Coefficient, era.Coefficient, era.Coefficient, estimation.FactorBuildingAge, "Building age",
		fmt.Sprintf("Built in %d (%s)", year, era.Label)), true
}

func (b *BuildingAge) eraOf(year int) (Era, bool) {
	for _, era := range b.eras {
		if era.Before == 0 || year < era.Before {
			return era, true
		}
	}
	return Era{}, false
}

// Heritage applies the constraints of listed buildings. Its factor is always reported.
type Heritage struct {
	budget   float64
	duration float64
}

type HeritageOption func(*Heritage)

func WithHeritageCoefficients(budget, duration float64) HeritageOption {
	return func(h *Heritage) {
		h.budget = budget
		h.duration = duration
	}
}

func NewHeritage(opts ...HeritageOption) *Heritage {
	h := &Heritage{
		budget:   DefaultHeritageBudgetCoefficient,
		duration: DefaultHeritageDurationCoefficient,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Heritage) Name() string { return estimation.FactorHeritage }

func (h *Heritage) Apply(property *estimation.PropertyAttributes, _ *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if property == nil || !property.IsHeritageListed {
		return estimation.Effect{}, false
	}
	return estimation.Effect{
		Budget:   h.budget,
		Duration: h.duration,
		Factor: NewFactor(estimation.FactorHeritage, "Heritage listed building", h.budget,
			"Works must follow the requirements of the heritage architect"),
	}, true
}

// Condo lengthens works that need the approval of the co-owners.
type Condo struct {
	duration float64
}

type CondoOption func(*Condo)

func WithCondoDurationCoefficient(c float64) CondoOption {
	return func(cd *Condo) {
		cd.duration = c
	}
}

func NewCondo(opts ...CondoOption) *Condo {
	c := &Condo{duration: DefaultCondoDurationCoefficient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Condo) Name() string { return estimation.FactorCondo }

func (c *Condo) Apply(property *estimation.PropertyAttributes, _ *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if property == nil || !property.IsCondo {
		return estimation.Effect{}, false
	}
	return effect(1, c.duration, c.duration, estimation.FactorCondo, "Condominium",
		"Co-owner approvals and access rules extend the schedule"), true
}
