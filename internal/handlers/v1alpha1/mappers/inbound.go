package mappers

import (
	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	srvMappers "github.com/renovplan/renovation-planner/internal/service/mappers"
)

func SnapshotToEstimation(s api.ProjectSnapshot) estimation.Project {
	return estimation.Project{
		Property:     PropertyFromApi(s.Property),
		WorkProject:  WorkProjectFromApi(s.WorkProject),
		SelectedLots: LotsFromApi(s.SelectedLots),
	}
}

func PropertyFromApi(p *api.Property) *estimation.PropertyAttributes {
	if p == nil {
		return nil
	}
	return &estimation.PropertyAttributes{
		PostalCode:       p.PostalCode,
		PropertyType:     estimation.PropertyType(p.PropertyType),
		LivingAreaSqm:    p.LivingAreaSqm,
		RoomCount:        p.RoomCount,
		BathroomCount:    p.BathroomCount,
		YearBuilt:        p.YearBuilt,
		IsHeritageListed: p.IsHeritageListed,
		IsCondo:          p.IsCondo,
	}
}

func WorkProjectFromApi(w *api.WorkProject) *estimation.WorkProjectAttributes {
	if w == nil {
		return nil
	}
	return &estimation.WorkProjectAttributes{
		FinishLevel:       estimation.FinishLevel(w.FinishLevel),
		IsUrgent:          w.IsUrgent,
		BudgetEnvelope:    RangeFromApi(w.BudgetEnvelope),
		RequiresArchitect: w.RequiresArchitect,
		DeclarationType:   estimation.DeclarationType(w.DeclarationType),
	}
}

func RangeFromApi(r *api.Range) *estimation.EstimationRange {
	if r == nil {
		return nil
	}
	return &estimation.EstimationRange{Min: r.Min, Max: r.Max}
}

func LotFromApi(l api.SelectedLot) estimation.SelectedLot {
	return estimation.SelectedLot{
		Type:                  catalog.LotType(l.Type),
		Name:                  l.Name,
		Description:           l.Description,
		Priority:              estimation.Priority(l.Priority),
		IsUrgent:              l.IsUrgent,
		EstimatedBudget:       RangeFromApi(l.EstimatedBudget),
		EstimatedDurationDays: l.EstimatedDurationDays,
	}
}

func LotsFromApi(lots []api.SelectedLot) []estimation.SelectedLot {
	res := make([]estimation.SelectedLot, 0, len(lots))
	for _, l := range lots {
		res = append(res, LotFromApi(l))
	}
	return res
}

func ProjectCreateToForm(p api.ProjectCreate) srvMappers.ProjectForm {
	return srvMappers.ProjectForm{
		Name:        p.Name,
		OwnerName:   p.OwnerName,
		OwnerEmail:  p.OwnerEmail,
		Property:    PropertyFromApi(p.Property),
		WorkProject: WorkProjectFromApi(p.WorkProject),
		Lots:        LotsFromApi(p.SelectedLots),
	}
}

func ProjectUpdateToForm(p api.ProjectUpdate) srvMappers.ProjectForm {
	return srvMappers.ProjectForm{
		Name:        p.Name,
		OwnerName:   p.OwnerName,
		OwnerEmail:  p.OwnerEmail,
		Property:    PropertyFromApi(p.Property),
		WorkProject: WorkProjectFromApi(p.WorkProject),
	}
}

func LotUpdateToForm(l api.LotUpdate) srvMappers.LotUpdateForm {
	form := srvMappers.LotUpdateForm{
		Description:           l.Description,
		IsUrgent:              l.IsUrgent,
		EstimatedBudget:       RangeFromApi(l.EstimatedBudget),
		EstimatedDurationDays: l.EstimatedDurationDays,
	}
	if l.Priority != nil {
		priority := estimation.Priority(*l.Priority)
		form.Priority = &priority
	}
	return form
}

func CatalogCriteria(params server.ListCatalogParams) catalog.Criteria {
	criteria := catalog.Criteria{
		RGEEligible: params.Rge,
		MaxBudget:   params.MaxBudget,
		MaxDuration: params.MaxDuration,
	}
	if params.Category != nil {
		criteria.Category = catalog.Category(*params.Category)
	}
	if params.Search != nil {
		criteria.SearchTerm = *params.Search
	}
	return criteria
}

func LotTypesFromApi(types []string) []catalog.LotType {
	res := make([]catalog.LotType, 0, len(types))
	for _, t := range types {
		res = append(res, catalog.LotType(t))
	}
	return res
}
