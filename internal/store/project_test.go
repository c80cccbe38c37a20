package store_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/config"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertProjectStm = "INSERT INTO projects (id, created_at, name, owner_email, property_type) VALUES ('%s', CURRENT_TIMESTAMP, '%s', '%s', '%s');"
	insertLotStm     = "INSERT INTO selected_lots (id, created_at, project_id, lot_type, position, category, name, priority) VALUES ('%s', CURRENT_TIMESTAMP, '%s', '%s', %d, '%s', '%s', 'medium');"
)

var _ = Describe("project store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	Context("list", func() {
		It("successfully list all projects", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "attic", "john@example.com", "house"))
			Expect(tx.Error).To(BeNil())

			projects, err := s.Project().List(context.TODO(), store.NewProjectQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(2))
		})

		It("successfully list projects filtered by owner email", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "attic", "john@example.com", "house"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "garage", "jane@example.com", "house"))
			Expect(tx.Error).To(BeNil())

			projects, err := s.Project().List(context.TODO(), store.NewProjectQueryFilter().ByOwnerEmail("jane@example.com"), nil)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(2))
		})

		It("successfully list projects filtered by name and property type", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "Kitchen refit", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "kitchen extension", "john@example.com", "house"))
			Expect(tx.Error).To(BeNil())

			projects, err := s.Project().List(context.TODO(), store.NewProjectQueryFilter().ByNameLike("KITCHEN"), nil)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(2))

			projects, err = s.Project().List(context.TODO(), store.NewProjectQueryFilter().ByNameLike("kitchen").ByPropertyType("house"), nil)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].Name).To(Equal("kitchen extension"))
		})

		It("successfully sorts and pages projects", func() {
			for _, name := range []string{"c", "a", "b"} {
				tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), name, "jane@example.com", "house"))
				Expect(tx.Error).To(BeNil())
			}

			projects, err := s.Project().List(context.TODO(), nil, store.NewProjectQueryOptions().WithSortOrder(store.SortByName).WithLimit(2).WithOffset(1))
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(2))
			Expect(projects[0].Name).To(Equal("b"))
			Expect(projects[1].Name).To(Equal("c"))
		})

		It("successfully list projects with their lots in selection order", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, id, "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertLotStm, uuid.New(), id, "painting", 1, "finishes", "Painting"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertLotStm, uuid.New(), id, "electrical", 0, "technical", "Electrical"))
			Expect(tx.Error).To(BeNil())

			projects, err := s.Project().List(context.TODO(), store.NewProjectQueryFilter().ByID([]string{id.String()}), nil)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].Lots).To(HaveLen(2))
			Expect(projects[0].Lots[0].LotType).To(Equal("electrical"))
			Expect(projects[0].Lots[1].LotType).To(Equal("painting"))
		})

		It("counts projects", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), "attic", "john@example.com", "house"))
			Expect(tx.Error).To(BeNil())

			count, err := s.Project().Count(context.TODO(), store.NewProjectQueryFilter())
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(2)))

			count, err = s.Project().Count(context.TODO(), store.NewProjectQueryFilter().ByPropertyType("house"))
			Expect(err).To(BeNil())
			Expect(count).To(Equal(int64(1)))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM selected_lots;")
			gormdb.Exec("DELETE FROM projects;")
		})
	})

	Context("get", func() {
		It("successfully get a project", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, id, "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())

			project, err := s.Project().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(project.ID).To(Equal(id))
			Expect(project.Name).To(Equal("kitchen"))
			Expect(project.PropertyType).To(Equal("apartment"))
			Expect(project.Lots).To(BeEmpty())
		})

		It("fails to get a missing project", func() {
			_, err := s.Project().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM projects;")
		})
	})

	Context("create", func() {
		It("successfully creates a project with its lots", func() {
			area := 72.5
			year := 1968
			project, err := s.Project().Create(context.TODO(), model.Project{
				Name:          "flat",
				OwnerEmail:    "jane@example.com",
				PostalCode:    "75011",
				PropertyType:  "apartment",
				LivingAreaSqm: &area,
				YearBuilt:     &year,
				IsCondo:       true,
				FinishLevel:   "premium",
				Lots: []model.SelectedLot{
					{LotType: "plumbing", Category: "technical", Name: "Plumbing", Priority: "high"},
					{LotType: "tiling", Category: "finishes", Name: "Tiling", Priority: "medium"},
				},
			})
			Expect(err).To(BeNil())
			Expect(project.ID).ToNot(Equal(uuid.Nil))
			Expect(*project.LivingAreaSqm).To(Equal(72.5))
			Expect(*project.YearBuilt).To(Equal(1968))
			Expect(project.IsCondo).To(BeTrue())
			Expect(project.Lots).To(HaveLen(2))
			Expect(project.Lots[0].LotType).To(Equal("plumbing"))
			Expect(project.Lots[0].Position).To(Equal(0))
			Expect(project.Lots[1].Position).To(Equal(1))
			Expect(project.Lots[1].ProjectID).To(Equal(project.ID))

			count := 0
			tx := gormdb.Raw("SELECT COUNT(*) FROM selected_lots;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(2))
		})

		It("fails to create a project with the same lot twice", func() {
			_, err := s.Project().Create(context.TODO(), model.Project{
				Name: "flat",
				Lots: []model.SelectedLot{
					{LotType: "plumbing", Category: "technical", Name: "Plumbing", Priority: "high"},
					{LotType: "plumbing", Category: "technical", Name: "Plumbing", Priority: "low"},
				},
			})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM selected_lots;")
			gormdb.Exec("DELETE FROM projects;")
		})
	})

	Context("update", func() {
		It("successfully updates a project", func() {
			area := 40.0
			project, err := s.Project().Create(context.TODO(), model.Project{
				Name:          "studio",
				LivingAreaSqm: &area,
				IsUrgent:      true,
				Lots:          []model.SelectedLot{{LotType: "painting", Category: "finishes", Name: "Painting", Priority: "low"}},
			})
			Expect(err).To(BeNil())

			project.Name = "studio refit"
			project.LivingAreaSqm = nil
			project.IsUrgent = false
			project.FinishLevel = "luxury"

			updated, err := s.Project().Update(context.TODO(), *project)
			Expect(err).To(BeNil())
			Expect(updated.Name).To(Equal("studio refit"))
			Expect(updated.LivingAreaSqm).To(BeNil())
			Expect(updated.IsUrgent).To(BeFalse())
			Expect(updated.FinishLevel).To(Equal("luxury"))
			Expect(updated.Lots).To(HaveLen(1))
		})

		It("fails to update a missing project", func() {
			_, err := s.Project().Update(context.TODO(), model.Project{ID: uuid.New(), Name: "ghost"})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM selected_lots;")
			gormdb.Exec("DELETE FROM projects;")
		})
	})

	Context("delete", func() {
		It("successfully deletes a project and its lots", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, id, "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertLotStm, uuid.New(), id, "painting", 0, "finishes", "Painting"))
			Expect(tx.Error).To(BeNil())

			err := s.Project().Delete(context.TODO(), id)
			Expect(err).To(BeNil())

			count := 0
			tx = gormdb.Raw("SELECT COUNT(*) FROM projects;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
			tx = gormdb.Raw("SELECT COUNT(*) FROM selected_lots;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("does not fail on a missing project", func() {
			Expect(s.Project().Delete(context.TODO(), uuid.New())).To(BeNil())
		})
	})
})
