package v1alpha1

import (
	"time"

	"github.com/google/uuid"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
)

// Estimation results travel as the engine builds them.
type (
	Estimation           = estimation.ProjectEstimation
	BudgetComparisonData = estimation.BudgetComparison
	CatalogEntry         = catalog.Entry
)

type Error struct {
	Message   string `json:"message"`
	RequestId string `json:"requestId,omitempty"`
}

type Info struct {
	GitCommit      string `json:"gitCommit"`
	VersionName    string `json:"versionName"`
	CatalogVersion string `json:"catalogVersion"`
}

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"range"`
}

type Property struct {
	PostalCode       string   `json:"postalCode,omitempty" validate:"omitempty,postal_code"`
	PropertyType     string   `json:"propertyType,omitempty" validate:"omitempty,property_type"`
	LivingAreaSqm    *float64 `json:"livingAreaSqm,omitempty" validate:"omitempty,gte=0"`
	RoomCount        *int     `json:"roomCount,omitempty" validate:"omitempty,gte=0"`
	BathroomCount    *int     `json:"bathroomCount,omitempty" validate:"omitempty,gte=0"`
	YearBuilt        *int     `json:"yearBuilt,omitempty" validate:"omitempty,gte=1000,lte=2100"`
	IsHeritageListed bool     `json:"isHeritageListed,omitempty"`
	IsCondo          bool     `json:"isCondo,omitempty"`
}

type WorkProject struct {
	FinishLevel       string `json:"finishLevel,omitempty" validate:"omitempty,finish_level"`
	IsUrgent          bool   `json:"isUrgent,omitempty"`
	BudgetEnvelope    *Range `json:"budgetEnvelope,omitempty"`
	RequiresArchitect *bool  `json:"requiresArchitect,omitempty"`
	DeclarationType   string `json:"declarationType,omitempty" validate:"omitempty,oneof=none prior_declaration building_permit"`
}

type SelectedLot struct {
	Type                  string `json:"type" validate:"required,lot_type"`
	Name                  string `json:"name,omitempty" validate:"max=255"`
	Description           string `json:"description,omitempty"`
	Priority              string `json:"priority,omitempty" validate:"omitempty,oneof=critical high medium low optional"`
	IsUrgent              bool   `json:"isUrgent,omitempty"`
	EstimatedBudget       *Range `json:"estimatedBudget,omitempty"`
	EstimatedDurationDays *int   `json:"estimatedDurationDays,omitempty" validate:"omitempty,gte=0"`
}

type LotUpdate struct {
	Description           *string `json:"description,omitempty"`
	Priority              *string `json:"priority,omitempty" validate:"omitempty,oneof=critical high medium low optional"`
	IsUrgent              *bool   `json:"isUrgent,omitempty"`
	EstimatedBudget       *Range  `json:"estimatedBudget,omitempty"`
	EstimatedDurationDays *int    `json:"estimatedDurationDays,omitempty" validate:"omitempty,gte=0"`
}

// ProjectSnapshot is the wizard state estimated without being stored.
type ProjectSnapshot struct {
	Property     *Property     `json:"property,omitempty"`
	WorkProject  *WorkProject  `json:"workProject,omitempty"`
	SelectedLots []SelectedLot `json:"selectedLots" validate:"dive"`
}

type ProjectCreate struct {
	Name         string        `json:"name" validate:"required,max=255"`
	OwnerName    string        `json:"ownerName,omitempty" validate:"max=255"`
	OwnerEmail   string        `json:"ownerEmail,omitempty" validate:"omitempty,email"`
	Property     *Property     `json:"property,omitempty"`
	WorkProject  *WorkProject  `json:"workProject,omitempty"`
	SelectedLots []SelectedLot `json:"selectedLots,omitempty" validate:"dive"`
}

// ProjectUpdate replaces the project attributes. An empty name keeps the current one.
type ProjectUpdate struct {
	Name        string       `json:"name,omitempty" validate:"max=255"`
	OwnerName   string       `json:"ownerName,omitempty" validate:"max=255"`
	OwnerEmail  string       `json:"ownerEmail,omitempty" validate:"omitempty,email"`
	Property    *Property    `json:"property,omitempty"`
	WorkProject *WorkProject `json:"workProject,omitempty"`
}

type Lot struct {
	Id                    uuid.UUID `json:"id"`
	Type                  string    `json:"type"`
	Number                string    `json:"number,omitempty"`
	Category              string    `json:"category"`
	Name                  string    `json:"name"`
	Description           string    `json:"description,omitempty"`
	Priority              string    `json:"priority"`
	IsUrgent              bool      `json:"isUrgent"`
	EstimatedBudget       *Range    `json:"estimatedBudget,omitempty"`
	EstimatedDurationDays *int      `json:"estimatedDurationDays,omitempty"`
	Position              int       `json:"position"`
}

type Project struct {
	Id           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	OwnerName    string       `json:"ownerName,omitempty"`
	OwnerEmail   string       `json:"ownerEmail,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
	Property     *Property    `json:"property,omitempty"`
	WorkProject  *WorkProject `json:"workProject,omitempty"`
	SelectedLots []Lot        `json:"selectedLots"`
}

type ProjectList []Project

type Catalog struct {
	Version string         `json:"version"`
	Entries []CatalogEntry `json:"entries"`
}

type CompatibilityRequest struct {
	LotTypes []string `json:"lotTypes" validate:"dive,lot_type"`
}

type Compatibility struct {
	Compatible        bool     `json:"compatible"`
	Warnings          []string `json:"warnings"`
	Suggestions       []string `json:"suggestions"`
	ComplementaryLots []string `json:"complementaryLots"`
	ExecutionOrder    []string `json:"executionOrder"`
}

type BudgetComparison struct {
	Comparison BudgetComparisonData `json:"comparison"`
	Estimation Estimation           `json:"estimation"`
}

type LotStats struct {
	TotalLots              int            `json:"totalLots"`
	ByCategory             map[string]int `json:"byCategory"`
	ByPriority             map[string]int `json:"byPriority"`
	UrgentCount            int            `json:"urgentCount"`
	EstimatedBudgetTotal   Range          `json:"estimatedBudgetTotal"`
	EstimatedDurationTotal int            `json:"estimatedDurationTotal"`
}

// ReportFormat of GET /api/v1/projects/{id}/report.
type ReportFormat string

const (
	ReportFormatCsv  ReportFormat = "csv"
	ReportFormatXlsx ReportFormat = "xlsx"
	ReportFormatHtml ReportFormat = "html"
)
