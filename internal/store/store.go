package store

import (
	"context"

	"github.com/renovplan/renovation-planner/internal/store/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Project() Project
	Lot() Lot
	InitialMigration(ctx context.Context) error
	Statistics(ctx context.Context) (model.ProjectStats, error)
	Close() error
}

type DataStore struct {
	db      *gorm.DB
	project Project
	lot     Lot
	log     logrus.FieldLogger
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		project: NewProjectStore(db),
		lot:     NewLotStore(db),
		db:      db,
		log:     logrus.WithField("component", "store"),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db, s.log)
}

func (s *DataStore) Project() Project {
	return s.project
}

func (s *DataStore) Lot() Lot {
	return s.lot
}

// InitialMigration creates the tables from the models. SQL migrations (see pkg/migrations)
// are used instead when a migration folder is configured.
func (s *DataStore) InitialMigration(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&model.Project{}, &model.SelectedLot{})
}

func (s *DataStore) Statistics(ctx context.Context) (model.ProjectStats, error) {
	projects, err := s.Project().List(ctx, NewProjectQueryFilter(), nil)
	if err != nil {
		return model.ProjectStats{}, err
	}
	return model.NewProjectStats(projects), nil
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
