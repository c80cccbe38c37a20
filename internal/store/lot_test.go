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

var _ = Describe("lot store", Ordered, func() {
	var (
		s         store.Store
		gormdb    *gorm.DB
		projectID uuid.UUID
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

	BeforeEach(func() {
		projectID = uuid.New()
		tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, projectID, "kitchen", "jane@example.com", "apartment"))
		Expect(tx.Error).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM selected_lots;")
		gormdb.Exec("DELETE FROM projects;")
	})

	Context("create", func() {
		It("appends lots in selection order", func() {
			first, err := s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "electrical", Category: "technical", Name: "Electrical", Priority: "high"})
			Expect(err).To(BeNil())
			Expect(first.Position).To(Equal(0))

			second, err := s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium"})
			Expect(err).To(BeNil())
			Expect(second.Position).To(Equal(1))

			lots, err := s.Lot().ListByProject(context.TODO(), projectID)
			Expect(err).To(BeNil())
			Expect(lots).To(HaveLen(2))
			Expect(lots[0].ID).To(Equal(first.ID))
			Expect(lots[1].ID).To(Equal(second.ID))
		})

		It("keeps the overrides", func() {
			minBudget, maxBudget, days := 1000.0, 2500.0, 4
			lot, err := s.Lot().Create(context.TODO(), model.SelectedLot{
				ProjectID:             projectID,
				LotType:               "painting",
				Category:              "finishes",
				Name:                  "Painting",
				Priority:              "low",
				EstimatedBudgetMin:    &minBudget,
				EstimatedBudgetMax:    &maxBudget,
				EstimatedDurationDays: &days,
			})
			Expect(err).To(BeNil())

			got, err := s.Lot().Get(context.TODO(), projectID, lot.ID)
			Expect(err).To(BeNil())
			Expect(*got.EstimatedBudgetMin).To(Equal(1000.0))
			Expect(*got.EstimatedBudgetMax).To(Equal(2500.0))
			Expect(*got.EstimatedDurationDays).To(Equal(4))
		})

		It("fails to select the same lot type twice", func() {
			_, err := s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium"})
			Expect(err).To(BeNil())

			_, err = s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "painting", Category: "finishes", Name: "Painting", Priority: "low"})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})
	})

	Context("get", func() {
		It("fails to get a lot of another project", func() {
			lot, err := s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium"})
			Expect(err).To(BeNil())

			_, err = s.Lot().Get(context.TODO(), uuid.New(), lot.ID)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("update", func() {
		It("successfully updates a lot", func() {
			lot, err := s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium", IsUrgent: true})
			Expect(err).To(BeNil())

			lot.Priority = "high"
			lot.IsUrgent = false
			lot.Description = "walls and ceilings"
			lot.LotType = "tiling"

			updated, err := s.Lot().Update(context.TODO(), *lot)
			Expect(err).To(BeNil())
			Expect(updated.Priority).To(Equal("high"))
			Expect(updated.IsUrgent).To(BeFalse())
			Expect(updated.Description).To(Equal("walls and ceilings"))
			Expect(updated.LotType).To(Equal("painting"))
		})

		It("fails to update a missing lot", func() {
			_, err := s.Lot().Update(context.TODO(), model.SelectedLot{ID: uuid.New(), ProjectID: projectID, Priority: "low"})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("delete", func() {
		It("successfully removes a lot", func() {
			lot, err := s.Lot().Create(context.TODO(), model.SelectedLot{ProjectID: projectID, LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium"})
			Expect(err).To(BeNil())

			Expect(s.Lot().Delete(context.TODO(), projectID, lot.ID)).To(BeNil())

			lots, err := s.Lot().ListByProject(context.TODO(), projectID)
			Expect(err).To(BeNil())
			Expect(lots).To(BeEmpty())
		})

		It("fails to remove a missing lot", func() {
			err := s.Lot().Delete(context.TODO(), projectID, uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})
})
