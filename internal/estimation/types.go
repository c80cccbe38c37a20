package estimation

import (
	"strings"
	"time"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

// EstimationRange is a closed [Min, Max] interval of euros, days or weeks.
type EstimationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r EstimationRange) Add(o EstimationRange) EstimationRange {
	return EstimationRange{Min: r.Min + o.Min, Max: r.Max + o.Max}
}

func (r EstimationRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

func (r EstimationRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// valid reports whether the range can be used as a user supplied override.
func (r EstimationRange) valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}

type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeLoft       PropertyType = "loft"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeBuilding   PropertyType = "building"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeWarehouse  PropertyType = "warehouse"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeOther      PropertyType = "other"
)

type FinishLevel string

const (
	FinishLevelBasic    FinishLevel = "basic"
	FinishLevelStandard FinishLevel = "standard"
	FinishLevelPremium  FinishLevel = "premium"
	FinishLevelLuxury   FinishLevel = "luxury"
)

func (f FinishLevel) Valid() bool {
	switch f {
	case FinishLevelBasic, FinishLevelStandard, FinishLevelPremium, FinishLevelLuxury:
		return true
	default:
		return false
	}
}

// DeclarationType is the administrative authorization the works require.
type DeclarationType string

const (
	DeclarationNone           DeclarationType = "none"
	DeclarationPrior          DeclarationType = "prior_declaration"
	DeclarationBuildingPermit DeclarationType = "building_permit"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityOptional Priority = "optional"
)

// Priorities returns every priority from the most to the least important.
func Priorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityOptional}
}

// PropertyAttributes describes the property being renovated.
// Nil pointers and non-positive numbers mean "unknown".
type PropertyAttributes struct {
	PostalCode       string       `json:"postalCode,omitempty"`
	PropertyType     PropertyType `json:"propertyType,omitempty"`
	LivingAreaSqm    *float64     `json:"livingAreaSqm,omitempty"`
	RoomCount        *int         `json:"roomCount,omitempty"`
	BathroomCount    *int         `json:"bathroomCount,omitempty"`
	YearBuilt        *int         `json:"yearBuilt,omitempty"`
	IsHeritageListed bool         `json:"isHeritageListed,omitempty"`
	IsCondo          bool         `json:"isCondo,omitempty"`
}

// LivingArea returns the living area when it is known.
func (p *PropertyAttributes) LivingArea() (float64, bool) {
	if p == nil || p.LivingAreaSqm == nil || *p.LivingAreaSqm <= 0 {
		return 0, false
	}
	return *p.LivingAreaSqm, true
}

// ConstructionYear returns the year the building was built when it is known.
func (p *PropertyAttributes) ConstructionYear() (int, bool) {
	if p == nil || p.YearBuilt == nil || *p.YearBuilt <= 0 {
		return 0, false
	}
	return *p.YearBuilt, true
}

// Department returns the two leading digits of the postal code.
func (p *PropertyAttributes) Department() (string, bool) {
	if p == nil {
		return "", false
	}
	code := strings.TrimSpace(p.PostalCode)
	if len(code) < 2 || !isDigit(code[0]) || !isDigit(code[1]) {
		return "", false
	}
	return code[:2], true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (p *PropertyAttributes) rooms() int {
	if p == nil || p.RoomCount == nil || *p.RoomCount <= 0 {
		return DefaultRoomCount
	}
	return *p.RoomCount
}

func (p *PropertyAttributes) bathrooms() int {
	if p == nil || p.BathroomCount == nil || *p.BathroomCount <= 0 {
		return DefaultBathroomCount
	}
	return *p.BathroomCount
}

// WorkProjectAttributes describes the constraints of the renovation project.
type WorkProjectAttributes struct {
	FinishLevel FinishLevel `json:"finishLevel,omitempty"`
	IsUrgent    bool        `json:"isUrgent,omitempty"`
	// BudgetEnvelope is only used to compare against the estimate.
	BudgetEnvelope    *EstimationRange `json:"budgetEnvelope,omitempty"`
	RequiresArchitect *bool            `json:"requiresArchitect,omitempty"`
	DeclarationType   DeclarationType  `json:"declarationType,omitempty"`
}

// SelectedLot is a lot picked for a project. Overrides take precedence over catalog values.
type SelectedLot struct {
	Type                  catalog.LotType  `json:"type"`
	Category              catalog.Category `json:"category,omitempty"`
	Name                  string           `json:"name,omitempty"`
	Description           string           `json:"description,omitempty"`
	Priority              Priority         `json:"priority,omitempty"`
	IsUrgent              bool             `json:"isUrgent,omitempty"`
	EstimatedBudget       *EstimationRange `json:"estimatedBudget,omitempty"`
	EstimatedDurationDays *int             `json:"estimatedDurationDays,omitempty"`
}

// Project is the snapshot the engine estimates.
type Project struct {
	Property     *PropertyAttributes    `json:"property,omitempty"`
	WorkProject  *WorkProjectAttributes `json:"workProject,omitempty"`
	SelectedLots []SelectedLot          `json:"selectedLots"`
}

type Impact string

const (
	ImpactIncrease Impact = "increase"
	ImpactDecrease Impact = "decrease"
	ImpactNeutral  Impact = "neutral"
)

// EstimationFactor explains one adjustment applied to the estimate.
type EstimationFactor struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Impact      Impact `json:"impact"`
	Percentage  int    `json:"percentage"`
	Description string `json:"description"`
}

// Coefficients are the multipliers derived from the property and the project.
type Coefficients struct {
	Budget   float64            `json:"budget"`
	Duration float64            `json:"duration"`
	Factors  []EstimationFactor `json:"factors"`
	Warnings []string           `json:"warnings,omitempty"`
}

// PricingBasis tells how a lot budget was obtained.
type PricingBasis string

const (
	BasisCustom  PricingBasis = "custom"
	BasisSurface PricingBasis = "surface"
	BasisCatalog PricingBasis = "catalog"
	BasisDefault PricingBasis = "default"
)

type LotBudgetEstimation struct {
	LotType  catalog.LotType  `json:"lotType"`
	LotName  string           `json:"lotName"`
	Category catalog.Category `json:"category"`
	Estimate EstimationRange  `json:"estimate"`
	Basis    PricingBasis     `json:"basis"`
}

type CategoryBudgetEstimation struct {
	Category     catalog.Category `json:"category"`
	CategoryName string           `json:"categoryName"`
	Estimate     EstimationRange  `json:"estimate"`
	// Percentage is the share of the category in the priced subtotal (max bound).
	Percentage int `json:"percentage"`
}

type FeesEstimation struct {
	Architect    EstimationRange `json:"architect"`
	Permits      EstimationRange `json:"permits"`
	Insurance    EstimationRange `json:"insurance"`
	Coordination EstimationRange `json:"coordination"`
	Other        EstimationRange `json:"other"`
}

func (f FeesEstimation) Total() EstimationRange {
	return f.Architect.Add(f.Permits).Add(f.Insurance).Add(f.Coordination).Add(f.Other)
}

type BudgetEstimation struct {
	Total           EstimationRange            `json:"total"`
	Subtotal        EstimationRange            `json:"subtotal"`
	ByLot           []LotBudgetEstimation      `json:"byLot"`
	ByCategory      []CategoryBudgetEstimation `json:"byCategory"`
	ContingencyRate EstimationRange            `json:"contingencyRate"`
	Contingency     EstimationRange            `json:"contingency"`
	Fees            FeesEstimation             `json:"fees"`
}

type PhaseEstimation struct {
	Phase          string            `json:"phase"`
	Name           string            `json:"name"`
	Lots           []catalog.LotType `json:"lots"`
	DurationDays   EstimationRange   `json:"durationDays"`
	CanParallelize bool              `json:"canParallelize"`
}

type CriticalPathItem struct {
	LotType      catalog.LotType   `json:"lotType"`
	DurationDays int               `json:"durationDays"`
	Dependencies []catalog.LotType `json:"dependencies"`
}

type DurationEstimation struct {
	TotalDays    EstimationRange    `json:"totalDays"`
	TotalWeeks   EstimationRange    `json:"totalWeeks"`
	Phases       []PhaseEstimation  `json:"phases"`
	CriticalPath []CriticalPathItem `json:"criticalPath"`
	// Parallelization is the share of a parallel phase counted in the total.
	Parallelization float64 `json:"parallelization"`
}

// ProjectEstimation is the full engine output. It is recomputed on every call.
type ProjectEstimation struct {
	Budget     BudgetEstimation   `json:"budget"`
	Duration   DurationEstimation `json:"duration"`
	Confidence int                `json:"confidence"`
	Factors    []EstimationFactor `json:"factors"`
	Warnings   []string           `json:"warnings"`
	ComputedAt time.Time          `json:"computedAt"`
}

// IsEmpty reports whether e is the distinguished empty estimation.
func (e ProjectEstimation) IsEmpty() bool {
	return e.Confidence == 0 && len(e.Budget.ByLot) == 0 && e.Budget.Total.IsZero()
}
