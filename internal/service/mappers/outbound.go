package mappers

import (
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/store/model"
)

// ProjectToEstimation builds the engine input from a stored project.
// Attribute sets without any value are left nil.
func ProjectToEstimation(p model.Project) estimation.Project {
	project := estimation.Project{
		Property:     PropertyFromModel(p),
		WorkProject:  WorkProjectFromModel(p),
		SelectedLots: make([]estimation.SelectedLot, 0, len(p.Lots)),
	}
	for _, l := range p.Lots {
		project.SelectedLots = append(project.SelectedLots, LotToEstimation(l))
	}
	return project
}

func PropertyFromModel(p model.Project) *estimation.PropertyAttributes {
	property := &estimation.PropertyAttributes{
		PostalCode:       p.PostalCode,
		PropertyType:     estimation.PropertyType(p.PropertyType),
		LivingAreaSqm:    p.LivingAreaSqm,
		RoomCount:        p.RoomCount,
		BathroomCount:    p.BathroomCount,
		YearBuilt:        p.YearBuilt,
		IsHeritageListed: p.IsHeritageListed,
		IsCondo:          p.IsCondo,
	}
	if *property == (estimation.PropertyAttributes{}) {
		return nil
	}
	return property
}

func WorkProjectFromModel(p model.Project) *estimation.WorkProjectAttributes {
	workProject := &estimation.WorkProjectAttributes{
		FinishLevel:       estimation.FinishLevel(p.FinishLevel),
		IsUrgent:          p.IsUrgent,
		RequiresArchitect: p.RequiresArchitect,
		DeclarationType:   estimation.DeclarationType(p.DeclarationType),
	}
	if p.BudgetEnvelopeMin != nil && p.BudgetEnvelopeMax != nil {
		workProject.BudgetEnvelope = &estimation.EstimationRange{Min: *p.BudgetEnvelopeMin, Max: *p.BudgetEnvelopeMax}
	}
	if *workProject == (estimation.WorkProjectAttributes{}) {
		return nil
	}
	return workProject
}

func LotToEstimation(l model.SelectedLot) estimation.SelectedLot {
	lot := estimation.SelectedLot{
		Type:                  catalog.LotType(l.LotType),
		Category:              catalog.Category(l.Category),
		Name:                  l.Name,
		Description:           l.Description,
		Priority:              estimation.Priority(l.Priority),
		IsUrgent:              l.IsUrgent,
		EstimatedDurationDays: l.EstimatedDurationDays,
	}
	if l.EstimatedBudgetMin != nil && l.EstimatedBudgetMax != nil {
		lot.EstimatedBudget = &estimation.EstimationRange{Min: *l.EstimatedBudgetMin, Max: *l.EstimatedBudgetMax}
	}
	return lot
}

// LotTypes returns the lot types of the project in selection order.
func LotTypes(p model.Project) []catalog.LotType {
	types := make([]catalog.LotType, 0, len(p.Lots))
	for _, l := range p.Lots {
		types = append(types, catalog.LotType(l.LotType))
	}
	return types
}
