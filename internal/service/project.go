package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service/mappers"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/internal/store/model"
	"go.uber.org/zap"
)

// ProjectService manages the stored wizard snapshots: projects and their selected lots.
type ProjectService struct {
	store   store.Store
	catalog *catalog.Catalog
}

func NewProjectService(store store.Store, cat *catalog.Catalog) *ProjectService {
	if cat == nil {
		cat = catalog.Default()
	}
	return &ProjectService{store: store, catalog: cat}
}

func (ps *ProjectService) ListProjects(ctx context.Context, filter *ProjectFilter) (model.ProjectList, error) {
	if filter == nil {
		filter = NewProjectFilter()
	}

	storeFilter := store.NewProjectQueryFilter()
	if filter.OwnerEmail != "" {
		storeFilter = storeFilter.ByOwnerEmail(filter.OwnerEmail)
	}
	if filter.NameLike != "" {
		storeFilter = storeFilter.ByNameLike(filter.NameLike)
	}
	if filter.PropertyType != "" {
		storeFilter = storeFilter.ByPropertyType(filter.PropertyType)
	}

	options := store.NewProjectQueryOptions().WithSortOrder(store.SortByCreatedTime)
	if filter.Limit > 0 {
		options = options.WithLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		options = options.WithOffset(filter.Offset)
	}

	projects, err := ps.store.Project().List(ctx, storeFilter, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (ps *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := ps.store.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrProjectNotFound(id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// CreateProject stores the project with its lots. Every lot must exist in the catalog
// and appear once.
func (ps *ProjectService) CreateProject(ctx context.Context, form mappers.ProjectForm) (*model.Project, error) {
	seen := make(map[catalog.LotType]bool, len(form.Lots))
	lots := make([]estimation.SelectedLot, 0, len(form.Lots))
	for _, l := range form.Lots {
		lot, err := ps.completeLot(l)
		if err != nil {
			return nil, err
		}
		if seen[lot.Type] {
			return nil, NewErrInvalidLot(lot.Type, "selected more than once")
		}
		seen[lot.Type] = true
		lots = append(lots, lot)
	}
	form.Lots = lots

	project := form.ToModel()

	ctx, err := ps.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	created, err := ps.store.Project().Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	zap.S().Named("project_service").Infow("project created", "project_id", created.ID, "lots", len(created.Lots))
	return created, nil
}

// UpdateProject replaces the project attributes. Selected lots are left untouched.
func (ps *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, form mappers.ProjectForm) (*model.Project, error) {
	ctx, err := ps.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	project, err := ps.store.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrProjectNotFound(id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if form.Name != "" {
		project.Name = form.Name
	}
	project.OwnerName = form.OwnerName
	project.OwnerEmail = form.OwnerEmail
	mappers.ApplyProjectAttributes(project, form.Property, form.WorkProject)

	updated, err := ps.store.Project().Update(ctx, *project)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := ps.GetProject(ctx, id); err != nil {
		return err
	}

	if err := ps.store.Project().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	zap.S().Named("project_service").Infow("project deleted", "project_id", id)
	return nil
}

// AddLot appends a catalog lot to the project selection. The priority defaults to medium.
func (ps *ProjectService) AddLot(ctx context.Context, projectID uuid.UUID, lot estimation.SelectedLot) (*model.SelectedLot, error) {
	lot, err := ps.completeLot(lot)
	if err != nil {
		return nil, err
	}

	if _, err := ps.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	created, err := ps.store.Lot().Create(ctx, mappers.LotToModel(projectID, lot))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrDuplicateLot(projectID, lot.Type)
		}
		return nil, fmt.Errorf("failed to add lot: %w", err)
	}
	return created, nil
}

func (ps *ProjectService) UpdateLot(ctx context.Context, projectID, lotID uuid.UUID, form mappers.LotUpdateForm) (*model.SelectedLot, error) {
	lot, err := ps.store.Lot().Get(ctx, projectID, lotID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrLotNotFound(lotID)
		}
		return nil, fmt.Errorf("failed to get lot: %w", err)
	}

	if form.EstimatedBudget != nil && (form.EstimatedBudget.Min < 0 || form.EstimatedBudget.Max < form.EstimatedBudget.Min) {
		return nil, NewErrInvalidLot(catalog.LotType(lot.LotType), "estimated budget must satisfy 0 <= min <= max")
	}
	if form.EstimatedDurationDays != nil && *form.EstimatedDurationDays < 0 {
		return nil, NewErrInvalidLot(catalog.LotType(lot.LotType), "estimated duration must not be negative")
	}

	form.Apply(lot)
	updated, err := ps.store.Lot().Update(ctx, *lot)
	if err != nil {
		return nil, fmt.Errorf("failed to update lot: %w", err)
	}
	return updated, nil
}

func (ps *ProjectService) RemoveLot(ctx context.Context, projectID, lotID uuid.UUID) error {
	if err := ps.store.Lot().Delete(ctx, projectID, lotID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrLotNotFound(lotID)
		}
		return fmt.Errorf("failed to remove lot: %w", err)
	}
	return nil
}

// LotStats summarizes the lots selected for the project.
func (ps *ProjectService) LotStats(ctx context.Context, projectID uuid.UUID) (*LotStats, error) {
	project, err := ps.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	stats := NewLotStats(mappers.ProjectToEstimation(*project).SelectedLots)
	return &stats, nil
}

// completeLot checks the lot against the catalog and fills the catalog defaults.
func (ps *ProjectService) completeLot(lot estimation.SelectedLot) (estimation.SelectedLot, error) {
	entry, ok := ps.catalog.Lookup(lot.Type)
	if !ok {
		return lot, NewErrUnknownLotType(lot.Type)
	}
	if lot.Name == "" {
		lot.Name = entry.Name
	}
	if lot.Category == "" {
		lot.Category = entry.Category
	}
	if lot.Priority == "" {
		lot.Priority = estimation.PriorityMedium
	}
	if b := lot.EstimatedBudget; b != nil && (b.Min < 0 || b.Max < b.Min) {
		return lot, NewErrInvalidLot(lot.Type, "estimated budget must satisfy 0 <= min <= max")
	}
	if d := lot.EstimatedDurationDays; d != nil && *d < 0 {
		return lot, NewErrInvalidLot(lot.Type, "estimated duration must not be negative")
	}
	return lot, nil
}

// ProjectFilter represents filtering options for listing projects
type ProjectFilter struct {
	OwnerEmail   string
	NameLike     string
	PropertyType string
	Limit        int
	Offset       int
}

func NewProjectFilter() *ProjectFilter {
	return &ProjectFilter{}
}

func (f *ProjectFilter) WithOwnerEmail(email string) *ProjectFilter {
	f.OwnerEmail = email
	return f
}

func (f *ProjectFilter) WithNameLike(pattern string) *ProjectFilter {
	f.NameLike = pattern
	return f
}

func (f *ProjectFilter) WithPropertyType(propertyType string) *ProjectFilter {
	f.PropertyType = propertyType
	return f
}

func (f *ProjectFilter) WithLimit(limit int) *ProjectFilter {
	f.Limit = limit
	return f
}

func (f *ProjectFilter) WithOffset(offset int) *ProjectFilter {
	f.Offset = offset
	return f
}
