package migrations_test

import (
	"context"
	"os"
	"path"

	"github.com/renovplan/renovation-planner/internal/config"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/internal/store/model"
	"github.com/renovplan/renovation-planner/pkg/migrations"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("migrations", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
	})

	AfterAll(func() {
		s.Close()
	})

	Context("store migrations", Ordered, func() {
		It("fails to migration the db -- migration folder does not exists", func() {
			err := migrations.MigrateStore(gormdb, "some folder")
			Expect(err).NotTo(BeNil())
		})

		It("fails to migration the db -- migration folder is a file", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())

			err = migrations.MigrateStore(gormdb, path.Join(currentFolder, "migrations.go"))
			Expect(err).NotTo(BeNil())
		})

		It("sucessfully migrate the db", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())

			err = migrations.MigrateStore(gormdb, path.Join(currentFolder, "sql"))
			Expect(err).To(BeNil())

			for _, table := range []string{"projects", "selected_lots", "goose_db_version"} {
				Expect(gormdb.Migrator().HasTable(table)).To(BeTrue())
			}

			// the migrated schema serves the store
			project, err := s.Project().Create(context.TODO(), model.Project{
				Name: "kitchen",
				Lots: []model.SelectedLot{{LotType: "painting", Category: "finishes", Name: "Painting", Priority: "medium"}},
			})
			Expect(err).To(BeNil())
			Expect(project.Lots).To(HaveLen(1))
		})

		It("is idempotent", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())

			Expect(migrations.MigrateStore(gormdb, path.Join(currentFolder, "sql"))).To(BeNil())
			Expect(migrations.MigrateStore(gormdb, path.Join(currentFolder, "sql"))).To(BeNil())
		})

		AfterEach(func() {
			gormdb.Exec("DROP TABLE IF EXISTS selected_lots;")
			gormdb.Exec("DROP TABLE IF EXISTS projects;")
			gormdb.Exec("DROP TABLE IF EXISTS goose_db_version;")
		})
	})
})
