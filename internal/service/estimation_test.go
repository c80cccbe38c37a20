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

var _ = Describe("Estimation Service", Ordered, func() {
	var (
		s        store.Store
		gormdb   *gorm.DB
		svc      *service.EstimationService
		projects *service.ProjectService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
		svc = service.NewEstimationService(s, nil)
		projects = service.NewProjectService(s, svc.Catalog())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM selected_lots;")
		gormdb.Exec("DELETE FROM projects;")
	})

	Context("Estimate", func() {
		It("estimates a snapshot", func() {
			res := svc.Estimate(context.TODO(), estimation.Project{
				Property: &estimation.PropertyAttributes{LivingAreaSqm: ptr(50.0), PostalCode: "75001"},
				SelectedLots: []estimation.SelectedLot{
					{Type: catalog.Painting, Category: catalog.CategoryFinishes},
				},
			})
			Expect(res.IsEmpty()).To(BeFalse())
			Expect(res.Budget.ByLot).To(HaveLen(1))
			Expect(res.Budget.Total.Min).To(BeNumerically(">", 0))
			Expect(res.Budget.Total.Min).To(BeNumerically("<=", res.Budget.Total.Max))
		})

		It("returns the empty estimation without lots", func() {
			res := svc.Estimate(context.TODO(), estimation.Project{})
			Expect(res.IsEmpty()).To(BeTrue())
			Expect(res.Confidence).To(Equal(0))
			Expect(res.Warnings).ToNot(BeEmpty())
		})
	})

	Context("EstimateStoredProject", func() {
		It("estimates a stored project", func() {
			project, err := projects.CreateProject(context.TODO(), mappers.ProjectForm{
				Name:     "flat",
				Property: &estimation.PropertyAttributes{LivingAreaSqm: ptr(70.0), PostalCode: "69003"},
				Lots:     []estimation.SelectedLot{{Type: catalog.Electrical}, {Type: catalog.Painting}},
			})
			Expect(err).To(BeNil())

			stored, err := svc.EstimateStoredProject(context.TODO(), project.ID)
			Expect(err).To(BeNil())

			direct := svc.Estimate(context.TODO(), mappers.ProjectToEstimation(*project))
			Expect(stored.Budget.Total).To(Equal(direct.Budget.Total))
			Expect(stored.Duration.TotalDays).To(Equal(direct.Duration.TotalDays))
			Expect(stored.Confidence).To(Equal(direct.Confidence))
		})

		It("fails on a missing project", func() {
			_, err := svc.EstimateStoredProject(context.TODO(), uuid.New())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("CompareStoredBudget", func() {
		It("compares with the envelope", func() {
			project, err := projects.CreateProject(context.TODO(), mappers.ProjectForm{
				Name:        "flat",
				Property:    &estimation.PropertyAttributes{LivingAreaSqm: ptr(70.0)},
				WorkProject: &estimation.WorkProjectAttributes{BudgetEnvelope: &estimation.EstimationRange{Min: 1, Max: 2}},
				Lots:        []estimation.SelectedLot{{Type: catalog.Electrical}},
			})
			Expect(err).To(BeNil())

			comparison, res, err := svc.CompareStoredBudget(context.TODO(), project.ID)
			Expect(err).To(BeNil())
			Expect(res.IsEmpty()).To(BeFalse())
			Expect(comparison.Status).To(Equal(estimation.BudgetOver))
		})

		It("fails without an envelope", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, id, "kitchen", "jane@example.com", "apartment"))
			Expect(tx.Error).To(BeNil())

			_, _, err := svc.CompareStoredBudget(context.TODO(), id)
			var missing *service.ErrMissingBudgetEnvelope
			Expect(errors.As(err, &missing)).To(BeTrue())
		})
	})

	Context("CheckCompatibility", func() {
		It("gathers the advice", func() {
			report, err := svc.CheckCompatibility(context.TODO(), []catalog.LotType{catalog.Painting, catalog.Demolition})
			Expect(err).To(BeNil())
			Expect(report.Compatible).To(BeTrue())
			Expect(report.ExecutionOrder).To(Equal([]catalog.LotType{catalog.Demolition, catalog.Painting}))
		})

		It("flags roofing without framing", func() {
			report, err := svc.CheckCompatibility(context.TODO(), []catalog.LotType{catalog.Roofing})
			Expect(err).To(BeNil())
			Expect(report.Compatible).To(BeFalse())
			Expect(report.Warnings).To(HaveLen(1))
		})

		It("rejects unknown lots", func() {
			_, err := svc.CheckCompatibility(context.TODO(), []catalog.LotType{catalog.Painting, "sauna"})
			var invalid *service.ErrInvalidLot
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})
})
