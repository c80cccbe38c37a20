package store_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/config"
	st "github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := st.InitDB(cfg)
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		store.Close()
	})

	Context("transaction", func() {
		It("insert a project successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			project, err := store.Project().Create(ctx, model.Project{ID: uuid.New(), Name: "kitchen"})
			Expect(err).To(BeNil())
			Expect(project).ToNot(BeNil())

			// commit
			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from projects;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rollback a project successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			project, err := store.Project().Create(ctx, model.Project{
				ID:   uuid.New(),
				Name: "bathroom",
				Lots: []model.SelectedLot{{LotType: "tiling", Category: "finishes", Name: "Tiling", Priority: "medium"}},
			})
			Expect(err).To(BeNil())
			Expect(project.Lots).To(HaveLen(1))

			// rollback
			_, cerr := st.Rollback(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from projects;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))

			err = gormDB.Raw("SELECT COUNT(*) from selected_lots;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("reuses the transaction already in the context", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			nested, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(nested)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM selected_lots;")
			gormDB.Exec("DELETE FROM projects;")
		})
	})

	Context("statistics", func() {
		It("counts projects and lots", func() {
			_, err := store.Project().Create(context.TODO(), model.Project{
				Name:         "flat",
				PropertyType: "apartment",
				FinishLevel:  "standard",
				Lots: []model.SelectedLot{
					{LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium"},
					{LotType: "electrical", Category: "technical", Name: "Electrical", Priority: "high"},
				},
			})
			Expect(err).To(BeNil())
			_, err = store.Project().Create(context.TODO(), model.Project{Name: "barn"})
			Expect(err).To(BeNil())

			stats, err := store.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.TotalProjects).To(Equal(2))
			Expect(stats.TotalLots).To(Equal(2))
			Expect(stats.ProjectsByPropertyType).To(HaveKeyWithValue("apartment", 1))
			Expect(stats.ProjectsByPropertyType).To(HaveKeyWithValue("unknown", 1))
			Expect(stats.LotsByCategory).To(HaveKeyWithValue("technical", 1))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM selected_lots;")
			gormDB.Exec("DELETE FROM projects;")
		})
	})
})
