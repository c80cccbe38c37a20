package mappers

import (
	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/store/model"
)

// ProjectForm carries the wizard snapshot of a project to create or update.
type ProjectForm struct {
	Name        string
	OwnerName   string
	OwnerEmail  string
	Property    *estimation.PropertyAttributes
	WorkProject *estimation.WorkProjectAttributes
	Lots        []estimation.SelectedLot
}

// ToModel maps the form, lots included, to a new project.
func (f ProjectForm) ToModel() model.Project {
	p := model.Project{
		ID:         uuid.New(),
		Name:       f.Name,
		OwnerName:  f.OwnerName,
		OwnerEmail: f.OwnerEmail,
	}
	ApplyProjectAttributes(&p, f.Property, f.WorkProject)

	p.Lots = make([]model.SelectedLot, 0, len(f.Lots))
	for _, l := range f.Lots {
		p.Lots = append(p.Lots, LotToModel(p.ID, l))
	}
	return p
}

// ApplyProjectAttributes overwrites the property and work project columns of p.
// A nil attribute set clears the matching columns.
func ApplyProjectAttributes(p *model.Project, property *estimation.PropertyAttributes, workProject *estimation.WorkProjectAttributes) {
	if property == nil {
		property = &estimation.PropertyAttributes{}
	}
	p.PostalCode = property.PostalCode
	p.PropertyType = string(property.PropertyType)
	p.LivingAreaSqm = property.LivingAreaSqm
	p.RoomCount = property.RoomCount
	p.BathroomCount = property.BathroomCount
	p.YearBuilt = property.YearBuilt
	p.IsHeritageListed = property.IsHeritageListed
	p.IsCondo = property.IsCondo

	if workProject == nil {
		workProject = &estimation.WorkProjectAttributes{}
	}
	p.FinishLevel = string(workProject.FinishLevel)
	p.IsUrgent = workProject.IsUrgent
	p.BudgetEnvelopeMin, p.BudgetEnvelopeMax = nil, nil
	if workProject.BudgetEnvelope != nil {
		minBudget, maxBudget := workProject.BudgetEnvelope.Min, workProject.BudgetEnvelope.Max
		p.BudgetEnvelopeMin, p.BudgetEnvelopeMax = &minBudget, &maxBudget
	}
	p.RequiresArchitect = workProject.RequiresArchitect
	p.DeclarationType = string(workProject.DeclarationType)
}

func LotToModel(projectID uuid.UUID, l estimation.SelectedLot) model.SelectedLot {
	lot := model.SelectedLot{
		ID:                    uuid.New(),
		ProjectID:             projectID,
		LotType:               string(l.Type),
		Category:              string(l.Category),
		Name:                  l.Name,
		Description:           l.Description,
		Priority:              string(l.Priority),
		IsUrgent:              l.IsUrgent,
		EstimatedDurationDays: l.EstimatedDurationDays,
	}
	if l.EstimatedBudget != nil {
		minBudget, maxBudget := l.EstimatedBudget.Min, l.EstimatedBudget.Max
		lot.EstimatedBudgetMin, lot.EstimatedBudgetMax = &minBudget, &maxBudget
	}
	return lot
}

// LotUpdateForm lists the lot attributes to change. Nil fields are left untouched.
type LotUpdateForm struct {
	Description           *string
	Priority              *estimation.Priority
	IsUrgent              *bool
	EstimatedBudget       *estimation.EstimationRange
	EstimatedDurationDays *int
}

func (f LotUpdateForm) Apply(lot *model.SelectedLot) {
	if f.Description != nil {
		lot.Description = *f.Description
	}
	if f.Priority != nil {
		lot.Priority = string(*f.Priority)
	}
	if f.IsUrgent != nil {
		lot.IsUrgent = *f.IsUrgent
	}
	if f.EstimatedBudget != nil {
		minBudget, maxBudget := f.EstimatedBudget.Min, f.EstimatedBudget.Max
		lot.EstimatedBudgetMin, lot.EstimatedBudgetMax = &minBudget, &maxBudget
	}
	if f.EstimatedDurationDays != nil {
		days := *f.EstimatedDurationDays
		lot.EstimatedDurationDays = &days
	}
}
