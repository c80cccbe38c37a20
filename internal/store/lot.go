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

type Lot interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) (model.SelectedLotList, error)
	Get(ctx context.Context, projectID, lotID uuid.UUID) (*model.SelectedLot, error)
	Create(ctx context.Context, lot model.SelectedLot) (*model.SelectedLot, error)
	Update(ctx context.Context, lot model.SelectedLot) (*model.SelectedLot, error)
	Delete(ctx context.Context, projectID, lotID uuid.UUID) error
}

type LotStore struct {
	db *gorm.DB
}

// Make sure we conform to Lot interface
var _ Lot = (*LotStore)(nil)

func NewLotStore(db *gorm.DB) Lot {
	return &LotStore{db: db}
}

func (l *LotStore) ListByProject(ctx context.Context, projectID uuid.UUID) (model.SelectedLotList, error) {
	var lots model.SelectedLotList
	result := l.getDB(ctx).Where("project_id = ?", projectID.String()).Order("position ASC").Find(&lots)
	if result.Error != nil {
		return nil, result.Error
	}
	return lots, nil
}

func (l *LotStore) Get(ctx context.Context, projectID, lotID uuid.UUID) (*model.SelectedLot, error) {
	var lot model.SelectedLot
	result := l.getDB(ctx).First(&lot, "id = ? AND project_id = ?", lotID.String(), projectID.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &lot, nil
}

// Create appends the lot after the lots already selected for the project.
// A lot type can be selected once per project.
func (l *LotStore) Create(ctx context.Context, lot model.SelectedLot) (*model.SelectedLot, error) {
	if lot.ID == uuid.Nil {
		lot.ID = uuid.New()
	}

	var existing int64
	if err := l.getDB(ctx).Model(&model.SelectedLot{}).
		Where("project_id = ? AND lot_type = ?", lot.ProjectID.String(), lot.LotType).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateKey
	}

	var last struct{ Position *int }
	if err := l.getDB(ctx).Model(&model.SelectedLot{}).
		Select("MAX(position) AS position").
		Where("project_id = ?", lot.ProjectID.String()).
		Scan(&last).Error; err != nil {
		return nil, err
	}
	lot.Position = 0
	if last.Position != nil {
		lot.Position = *last.Position + 1
	}

	result := l.getDB(ctx).Clauses(clause.Returning{}).Create(&lot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &lot, nil
}

// Update overwrites the lot attributes. Its type, project and position never change.
func (l *LotStore) Update(ctx context.Context, lot model.SelectedLot) (*model.SelectedLot, error) {
	lot.UpdatedAt = time.Now()
	result := l.getDB(ctx).Model(&model.SelectedLot{ID: lot.ID}).
		Where("project_id = ?", lot.ProjectID.String()).
		Select("*").
		Omit("id", "created_at", "project_id", "lot_type", "position").
		Updates(&lot)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return l.Get(ctx, lot.ProjectID, lot.ID)
}

func (l *LotStore) Delete(ctx context.Context, projectID, lotID uuid.UUID) error {
	result := l.getDB(ctx).Delete(&model.SelectedLot{}, "id = ? AND project_id = ?", lotID.String(), projectID.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (l *LotStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return l.db.WithContext(ctx)
}
