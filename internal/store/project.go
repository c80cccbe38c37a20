package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Project interface {
	List(ctx context.Context, filter *ProjectQueryFilter, opts *ProjectQueryOptions) (model.ProjectList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, project model.Project) (*model.Project, error)
	Update(ctx context.Context, project model.Project) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter *ProjectQueryFilter) (int64, error)
}

type ProjectStore struct {
	db *gorm.DB
}

// Make sure we conform to Project interface
var _ Project = (*ProjectStore)(nil)

func NewProjectStore(db *gorm.DB) Project {
	return &ProjectStore{db: db}
}

func (p *ProjectStore) List(ctx context.Context, filter *ProjectQueryFilter, opts *ProjectQueryOptions) (model.ProjectList, error) {
	var projects model.ProjectList
	tx := p.getDB(ctx).Model(&projects).Preload("Lots", orderLots)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if opts != nil && len(opts.QueryFn) > 0 {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	} else {
		tx = tx.Order("created_at DESC")
	}

	result := tx.Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (p *ProjectStore) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	result := p.getDB(ctx).Preload("Lots", orderLots).First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &project, nil
}

// Create stores the project and the lots it carries, keeping their order.
func (p *ProjectStore) Create(ctx context.Context, project model.Project) (*model.Project, error) {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	lots := project.Lots
	project.Lots = nil

	result := p.getDB(ctx).Clauses(clause.Returning{}).Omit(clause.Associations).Create(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}

	for i := range lots {
		lot := lots[i]
		if lot.ID == uuid.Nil {
			lot.ID = uuid.New()
		}
		lot.ProjectID = project.ID
		lot.Position = i
		if err := p.getDB(ctx).Create(&lot).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateKey
			}
			return nil, err
		}
	}

	return p.Get(ctx, project.ID)
}

// Update overwrites every project attribute. Lots are managed through the Lot store.
func (p *ProjectStore) Update(ctx context.Context, project model.Project) (*model.Project, error) {
	project.UpdatedAt = time.Now()
	result := p.getDB(ctx).Model(&model.Project{ID: project.ID}).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&project)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return p.Get(ctx, project.ID)
}

func (p *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	// sqlite does not enforce the cascade unless foreign keys are switched on
	if err := p.getDB(ctx).Delete(&model.SelectedLot{}, "project_id = ?", id.String()).Error; err != nil {
		return err
	}
	result := p.getDB(ctx).Unscoped().Delete(&model.Project{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (p *ProjectStore) Count(ctx context.Context, filter *ProjectQueryFilter) (int64, error) {
	var count int64
	tx := p.getDB(ctx).Model(&model.Project{})
	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (p *ProjectStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return p.db.WithContext(ctx)
}

func orderLots(db *gorm.DB) *gorm.DB {
	return db.Order("selected_lots.position ASC")
}
