package service_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/config"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service"
	"github.com/renovplan/renovation-planner/internal/service/mappers"
	"github.com/renovplan/renovation-planner/internal/store"
)

const (
	insertProjectStm = "INSERT INTO projects (id, created_at, name, owner_email, property_type) VALUES ('%s', CURRENT_TIMESTAMP, '%s', '%s', '%s');"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("Project Service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		svc    *service.ProjectService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
		svc = service.NewProjectService(s, nil)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM selected_lots;")
		gormdb.Exec("DELETE FROM projects;")
	})

	Context("ListProjects", func() {
		It("lists all projects", func() {
			for _, name := range []string{"kitchen", "attic", "garage"} {
				tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), name, "jane@example.com", "house"))
				Expect(tx.Error).To(BeNil())
			}

			projects, err := svc.ListProjects(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(3))
		})

		It("filters projects", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "attic", "john@example.com", "house"))
			Expect(tx.Error).To(BeNil())

			projects, err := svc.ListProjects(context.TODO(), service.NewProjectFilter().WithOwnerEmail("john@example.com"))
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].Name).To(Equal("attic"))

			projects, err = svc.ListProjects(context.TODO(), service.NewProjectFilter().WithPropertyType("apartment").WithLimit(10))
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].Name).To(Equal("kitchen"))
		})
	})

	Context("CreateProject", func() {
		It("creates a project and fills the lots from the catalog", func() {
			project, err := svc.CreateProject(context.TODO(), mappers.ProjectForm{
				Name:       "flat",
				OwnerEmail: "jane@example.com",
				Property: &estimation.PropertyAttributes{
					PostalCode:    "75011",
					PropertyType:  estimation.PropertyTypeApartment,
					LivingAreaSqm: ptr(62.0),
				},
				WorkProject: &estimation.WorkProjectAttributes{
					FinishLevel:    estimation.FinishLevelPremium,
					BudgetEnvelope: &estimation.EstimationRange{Min: 30000, Max: 45000},
				},
				Lots: []estimation.SelectedLot{
					{Type: catalog.Electrical},
					{Type: catalog.Painting, Priority: estimation.PriorityLow},
				},
			})
			Expect(err).To(BeNil())
			Expect(project.Name).To(Equal("flat"))
			Expect(*project.BudgetEnvelopeMax).To(Equal(45000.0))
			Expect(project.Lots).To(HaveLen(2))
			Expect(project.Lots[0].LotType).To(Equal(string(catalog.Electrical)))
			Expect(project.Lots[0].Name).ToNot(BeEmpty())
			Expect(project.Lots[0].Category).To(Equal(string(catalog.CategoryElectrical)))
			Expect(project.Lots[0].Priority).To(Equal(string(estimation.PriorityMedium)))
			Expect(project.Lots[1].Priority).To(Equal(string(estimation.PriorityLow)))
		})

		It("rejects unknown lot types", func() {
			_, err := svc.CreateProject(context.TODO(), mappers.ProjectForm{
				Name: "flat",
				Lots: []estimation.SelectedLot{{Type: "sauna"}},
			})
			Expect(err).ToNot(BeNil())
			var invalid *service.ErrInvalidLot
			Expect(errors.As(err, &invalid)).To(BeTrue())

			count := 0
			tx := gormdb.Raw("SELECT COUNT(*) FROM projects;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("rejects a lot selected twice", func() {
			_, err := svc.CreateProject(context.TODO(), mappers.ProjectForm{
				Name: "flat",
				Lots: []estimation.SelectedLot{{Type: catalog.Painting}, {Type: catalog.Painting}},
			})
			var invalid *service.ErrInvalidLot
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})

	Context("GetProject", func() {
		It("returns a not found error", func() {
			_, err := svc.GetProject(context.TODO(), uuid.New())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("UpdateProject", func() {
		It("replaces the attributes and keeps the lots", func() {
			project, err := svc.CreateProject(context.TODO(), mappers.ProjectForm{
				Name:        "flat",
				Property:    &estimation.PropertyAttributes{PostalCode: "75011", IsCondo: true},
				WorkProject: &estimation.WorkProjectAttributes{IsUrgent: true},
				Lots:        []estimation.SelectedLot{{Type: catalog.Painting}},
			})
			Expect(err).To(BeNil())

			updated, err := svc.UpdateProject(context.TODO(), project.ID, mappers.ProjectForm{
				OwnerName: "Jane",
				Property:  &estimation.PropertyAttributes{PostalCode: "69003", YearBuilt: ptr(1955)},
			})
			Expect(err).To(BeNil())
			Expect(updated.Name).To(Equal("flat"))
			Expect(updated.OwnerName).To(Equal("Jane"))
			Expect(updated.PostalCode).To(Equal("69003"))
			Expect(*updated.YearBuilt).To(Equal(1955))
			Expect(updated.IsCondo).To(BeFalse())
			Expect(updated.IsUrgent).To(BeFalse())
			Expect(updated.Lots).To(HaveLen(1))
		})

		It("fails on a missing project", func() {
			_, err := svc.UpdateProject(context.TODO(), uuid.New(), mappers.ProjectForm{Name: "ghost"})
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("DeleteProject", func() {
		It("deletes the project", func() {
			project, err := svc.CreateProject(context.TODO(), mappers.ProjectForm{
				Name: "flat",
				Lots: []estimation.SelectedLot{{Type: catalog.Painting}},
			})
			Expect(err).To(BeNil())

			Expect(svc.DeleteProject(context.TODO(), project.ID)).To(BeNil())

			_, err = svc.GetProject(context.TODO(), project.ID)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("fails on a missing project", func() {
			err := svc.DeleteProject(context.TODO(), uuid.New())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("lots", func() {
		var projectID uuid.UUID

		BeforeEach(func() {
			projectID = uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, projectID, "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
		})

		It("adds a lot with a medium priority by default", func() {
			lot, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{Type: catalog.Tiling})
			Expect(err).To(BeNil())
			Expect(lot.Priority).To(Equal(string(estimation.PriorityMedium)))
			Expect(lot.Category).To(Equal(string(catalog.CategoryFinishes)))
		})

		It("rejects a duplicate lot", func() {
			_, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{Type: catalog.Tiling})
			Expect(err).To(BeNil())

			_, err = svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{Type: catalog.Tiling})
			var duplicate *service.ErrDuplicateLot
			Expect(errors.As(err, &duplicate)).To(BeTrue())
		})

		It("rejects an unknown lot type", func() {
			_, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{Type: "sauna"})
			var invalid *service.ErrInvalidLot
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("rejects an inverted budget override", func() {
			_, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{
				Type:            catalog.Tiling,
				EstimatedBudget: &estimation.EstimationRange{Min: 500, Max: 100},
			})
			var invalid *service.ErrInvalidLot
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("fails to add a lot to a missing project", func() {
			_, err := svc.AddLot(context.TODO(), uuid.New(), estimation.SelectedLot{Type: catalog.Tiling})
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("updates a lot", func() {
			lot, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{Type: catalog.Tiling})
			Expect(err).To(BeNil())

			updated, err := svc.UpdateLot(context.TODO(), projectID, lot.ID, mappers.LotUpdateForm{
				Priority:        ptr(estimation.PriorityCritical),
				IsUrgent:        ptr(true),
				EstimatedBudget: &estimation.EstimationRange{Min: 2000, Max: 3000},
			})
			Expect(err).To(BeNil())
			Expect(updated.Priority).To(Equal(string(estimation.PriorityCritical)))
			Expect(updated.IsUrgent).To(BeTrue())
			Expect(*updated.EstimatedBudgetMin).To(Equal(2000.0))
		})

		It("removes a lot", func() {
			lot, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{Type: catalog.Tiling})
			Expect(err).To(BeNil())

			Expect(svc.RemoveLot(context.TODO(), projectID, lot.ID)).To(BeNil())

			err = svc.RemoveLot(context.TODO(), projectID, lot.ID)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("computes the lot statistics", func() {
			_, err := svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{
				Type:                  catalog.Tiling,
				IsUrgent:              true,
				EstimatedBudget:       &estimation.EstimationRange{Min: 1000, Max: 2000},
				EstimatedDurationDays: ptr(4),
			})
			Expect(err).To(BeNil())
			_, err = svc.AddLot(context.TODO(), projectID, estimation.SelectedLot{
				Type:                  catalog.Painting,
				Priority:              estimation.PriorityHigh,
				EstimatedDurationDays: ptr(6),
			})
			Expect(err).To(BeNil())

			stats, err := svc.LotStats(context.TODO(), projectID)
			Expect(err).To(BeNil())
			Expect(stats.TotalLots).To(Equal(2))
			Expect(stats.UrgentCount).To(Equal(1))
			Expect(stats.ByCategory[catalog.CategoryFinishes]).To(Equal(2))
			Expect(stats.ByCategory).To(HaveKeyWithValue(catalog.CategoryStructural, 0))
			Expect(stats.ByPriority[estimation.PriorityMedium]).To(Equal(1))
			Expect(stats.ByPriority[estimation.PriorityHigh]).To(Equal(1))
			Expect(stats.EstimatedBudgetTotal).To(Equal(estimation.EstimationRange{Min: 1000, Max: 2000}))
			Expect(stats.EstimatedDurationTotal).To(Equal(10))
		})
	})
})
