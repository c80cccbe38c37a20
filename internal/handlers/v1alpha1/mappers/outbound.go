package mappers

import (
	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service"
	srvMappers "github.com/renovplan/renovation-planner/internal/service/mappers"
	"github.com/renovplan/renovation-planner/internal/store/model"
)

func ProjectToApi(p model.Project) api.Project {
	project := api.Project{
		Id:           p.ID,
		Name:         p.Name,
		OwnerName:    p.OwnerName,
		OwnerEmail:   p.OwnerEmail,
		CreatedAt:    p.CreatedAt,
		Property:     PropertyToApi(srvMappers.PropertyFromModel(p)),
		WorkProject:  WorkProjectToApi(srvMappers.WorkProjectFromModel(p)),
		SelectedLots: make([]api.Lot, 0, len(p.Lots)),
	}
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		project.UpdatedAt = &updatedAt
	}
	for _, l := range p.Lots {
		project.SelectedLots = append(project.SelectedLots, LotToApi(l))
	}
	return project
}

func ProjectListToApi(projects model.ProjectList) api.ProjectList {
	res := make(api.ProjectList, 0, len(projects))
	for _, p := range projects {
		res = append(res, ProjectToApi(p))
	}
	return res
}

func PropertyToApi(p *estimation.PropertyAttributes) *api.Property {
	if p == nil {
		return nil
	}
	return &api.Property{
		PostalCode:       p.PostalCode,
		PropertyType:     string(p.PropertyType),
		LivingAreaSqm:    p.LivingAreaSqm,
		RoomCount:        p.RoomCount,
		BathroomCount:    p.BathroomCount,
		YearBuilt:        p.YearBuilt,
		IsHeritageListed: p.IsHeritageListed,
		IsCondo:          p.IsCondo,
	}
}

func WorkProjectToApi(w *estimation.WorkProjectAttributes) *api.WorkProject {
	if w == nil {
		return nil
	}
	return &api.WorkProject{
		FinishLevel:       string(w.FinishLevel),
		IsUrgent:          w.IsUrgent,
		BudgetEnvelope:    RangeToApi(w.BudgetEnvelope),
		RequiresArchitect: w.RequiresArchitect,
		DeclarationType:   string(w.DeclarationType),
	}
}

func RangeToApi(r *estimation.EstimationRange) *api.Range {
	if r == nil {
		return nil
	}
	return &api.Range{Min: r.Min, Max: r.Max}
}

func LotToApi(l model.SelectedLot) api.Lot {
	lot := api.Lot{
		Id:                    l.ID,
		Type:                  l.LotType,
		Number:                l.LotNumber,
		Category:              l.Category,
		Name:                  l.Name,
		Description:           l.Description,
		Priority:              l.Priority,
		IsUrgent:              l.IsUrgent,
		EstimatedDurationDays: l.EstimatedDurationDays,
		Position:              l.Position,
	}
	if l.EstimatedBudgetMin != nil && l.EstimatedBudgetMax != nil {
		lot.EstimatedBudget = &api.Range{Min: *l.EstimatedBudgetMin, Max: *l.EstimatedBudgetMax}
	}
	return lot
}

func CatalogToApi(version string, entries []catalog.Entry) api.Catalog {
	if entries == nil {
		entries = []catalog.Entry{}
	}
	return api.Catalog{Version: version, Entries: entries}
}

func CompatibilityToApi(r service.CompatibilityReport) api.Compatibility {
	return api.Compatibility{
		Compatible:        r.Compatible,
		Warnings:          nonNil(r.Warnings),
		Suggestions:       nonNil(r.Suggestions),
		ComplementaryLots: lotTypesToApi(r.ComplementaryLots),
		ExecutionOrder:    lotTypesToApi(r.ExecutionOrder),
	}
}

func LotStatsToApi(s service.LotStats) api.LotStats {
	res := api.LotStats{
		TotalLots:              s.TotalLots,
		ByCategory:             make(map[string]int, len(s.ByCategory)),
		ByPriority:             make(map[string]int, len(s.ByPriority)),
		UrgentCount:            s.UrgentCount,
		EstimatedBudgetTotal:   api.Range{Min: s.EstimatedBudgetTotal.Min, Max: s.EstimatedBudgetTotal.Max},
		EstimatedDurationTotal: s.EstimatedDurationTotal,
	}
	for k, v := range s.ByCategory {
		res.ByCategory[string(k)] = v
	}
	for k, v := range s.ByPriority {
		res.ByPriority[string(k)] = v
	}
	return res
}

func BudgetComparisonToApi(c estimation.BudgetComparison, est estimation.ProjectEstimation) api.BudgetComparison {
	return api.BudgetComparison{Comparison: c, Estimation: est}
}

func lotTypesToApi(types []catalog.LotType) []string {
	res := make([]string, 0, len(types))
	for _, t := range types {
		res = append(res, string(t))
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
