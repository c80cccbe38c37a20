package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Project is the wizard snapshot of one renovation project: its owner, the property
// and the work project attributes. Estimations are computed from it and never stored.
type Project struct {
	ID         uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time
	Name       string `gorm:"not null;type:VARCHAR(255)"`
	OwnerName  string `gorm:"type:VARCHAR(255)"`
	OwnerEmail string `gorm:"type:VARCHAR(255);index:projects_owner_email_idx"`

	PostalCode       string `gorm:"type:VARCHAR(10)"`
	PropertyType     string `gorm:"type:VARCHAR(50)"`
	LivingAreaSqm    *float64
	RoomCount        *int
	BathroomCount    *int
	YearBuilt        *int
	IsHeritageListed bool `gorm:"not null;default:false"`
	IsCondo          bool `gorm:"not null;default:false"`

	FinishLevel       string `gorm:"type:VARCHAR(20)"`
	IsUrgent          bool   `gorm:"not null;default:false"`
	BudgetEnvelopeMin *float64
	BudgetEnvelopeMax *float64
	RequiresArchitect *bool
	DeclarationType   string `gorm:"type:VARCHAR(50)"`

	Lots []SelectedLot `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
}

type ProjectList []Project

func (p Project) String() string {
	val, _ := json.Marshal(p)
	return string(val)
}

// SelectedLot is a lot picked for a project. A lot type is selected at most once per project.
type SelectedLot struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
	ProjectID uuid.UUID `gorm:"not null;type:VARCHAR(255);uniqueIndex:project_lot_type"`
	LotType   string    `gorm:"not null;type:VARCHAR(100);uniqueIndex:project_lot_type"`
	// Position keeps the selection order.
	Position              int    `gorm:"not null;default:0"`
	LotNumber             string `gorm:"type:VARCHAR(10)"`
	Category              string `gorm:"not null;type:VARCHAR(50)"`
	Name                  string `gorm:"not null;type:VARCHAR(255)"`
	Description           string `gorm:"type:TEXT"`
	Priority              string `gorm:"not null;type:VARCHAR(20)"`
	IsUrgent              bool   `gorm:"not null;default:false"`
	EstimatedBudgetMin    *float64
	EstimatedBudgetMax    *float64
	EstimatedDurationDays *int
}

type SelectedLotList []SelectedLot

func (l SelectedLot) String() string {
	val, _ := json.Marshal(l)
	return string(val)
}
