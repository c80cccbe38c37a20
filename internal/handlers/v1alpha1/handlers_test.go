package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/config"
	handlers "github.com/renovplan/renovation-planner/internal/handlers/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/service"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/pkg/middleware"
	"github.com/renovplan/renovation-planner/pkg/requestid"
)

const (
	insertProjectStm = "INSERT INTO projects (id, created_at, name, owner_email, property_type) VALUES ('%s', CURRENT_TIMESTAMP, '%s', '%s', '%s');"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("handlers", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		router http.Handler
	)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).To(BeNil())
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, dst any) {
		Expect(json.Unmarshal(rec.Body.Bytes(), dst)).To(BeNil())
	}

	createProject := func(form api.ProjectCreate) api.Project {
		rec := do(http.MethodPost, "/api/v1/projects", form)
		Expect(rec.Code).To(Equal(http.StatusCreated), rec.Body.String())
		var project api.Project
		decode(rec, &project)
		return project
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())

		estimationSrv := service.NewEstimationService(s, nil)
		h := handlers.NewServiceHandler(
			estimationSrv,
			service.NewProjectService(s, estimationSrv.Catalog()),
			service.NewReportService(nil),
		)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		router = server.HandlerWithOptions(h, server.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: handlers.ErrorHandler,
		})
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM selected_lots;")
		gormdb.Exec("DELETE FROM projects;")
	})

	Context("info", func() {
		It("reports healthy", func() {
			rec := do(http.MethodGet, "/health", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("returns the version", func() {
			rec := do(http.MethodGet, "/api/v1/info", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var info api.Info
			decode(rec, &info)
			Expect(info.VersionName).ToNot(BeEmpty())
			Expect(info.CatalogVersion).ToNot(BeEmpty())
		})
	})

	Context("catalog", func() {
		It("lists every entry", func() {
			rec := do(http.MethodGet, "/api/v1/catalog", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var cat api.Catalog
			decode(rec, &cat)
			Expect(cat.Entries).To(HaveLen(39))
		})

		It("filters by category", func() {
			rec := do(http.MethodGet, "/api/v1/catalog?category=finishes", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var cat api.Catalog
			decode(rec, &cat)
			Expect(cat.Entries).ToNot(BeEmpty())
			for _, e := range cat.Entries {
				Expect(string(e.Category)).To(Equal("finishes"))
			}
		})

		It("rejects an unknown category", func() {
			rec := do(http.MethodGet, "/api/v1/catalog?category=spa", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects a malformed query parameter", func() {
			rec := do(http.MethodGet, "/api/v1/catalog?maxBudget=cheap", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("estimations", func() {
		It("estimates a snapshot", func() {
			rec := do(http.MethodPost, "/api/v1/estimations", api.ProjectSnapshot{
				Property:     &api.Property{PostalCode: "75001", LivingAreaSqm: ptr(50.0)},
				SelectedLots: []api.SelectedLot{{Type: "painting"}},
			})
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())

			var est api.Estimation
			decode(rec, &est)
			Expect(est.Budget.ByLot).To(HaveLen(1))
			Expect(est.Budget.Total.Min).To(BeNumerically(">", 0))
		})

		It("returns the empty estimation without lots", func() {
			rec := do(http.MethodPost, "/api/v1/estimations", api.ProjectSnapshot{SelectedLots: []api.SelectedLot{}})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var est api.Estimation
			decode(rec, &est)
			Expect(est.Confidence).To(Equal(0))
			Expect(est.Warnings).ToNot(BeEmpty())
		})

		It("rejects an unknown lot type", func() {
			rec := do(http.MethodPost, "/api/v1/estimations", api.ProjectSnapshot{SelectedLots: []api.SelectedLot{{Type: "sauna"}}})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var e api.Error
			decode(rec, &e)
			Expect(e.Message).To(ContainSubstring("unknown lot type"))
			Expect(e.RequestId).ToNot(BeEmpty())
			Expect(rec.Header().Get(requestid.Header)).To(Equal(e.RequestId))
		})

		It("rejects an empty body", func() {
			rec := do(http.MethodPost, "/api/v1/estimations", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("compares a snapshot with its envelope", func() {
			rec := do(http.MethodPost, "/api/v1/estimations/budget-comparison", api.ProjectSnapshot{
				WorkProject:  &api.WorkProject{BudgetEnvelope: &api.Range{Min: 1, Max: 2}},
				SelectedLots: []api.SelectedLot{{Type: "electrical"}},
			})
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())

			var res api.BudgetComparison
			decode(rec, &res)
			Expect(string(res.Comparison.Status)).To(Equal("over"))
		})

		It("requires an envelope to compare", func() {
			rec := do(http.MethodPost, "/api/v1/estimations/budget-comparison", api.ProjectSnapshot{
				SelectedLots: []api.SelectedLot{{Type: "electrical"}},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("checks compatibility", func() {
			rec := do(http.MethodPost, "/api/v1/compatibility", api.CompatibilityRequest{LotTypes: []string{"roofing"}})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var res api.Compatibility
			decode(rec, &res)
			Expect(res.Compatible).To(BeFalse())
			Expect(res.Warnings).To(HaveLen(1))
			Expect(res.ExecutionOrder).To(Equal([]string{"roofing"}))
		})
	})

	Context("projects", func() {
		It("creates and gets a project", func() {
			created := createProject(api.ProjectCreate{
				Name:         "flat",
				OwnerEmail:   "jane@example.com",
				Property:     &api.Property{PostalCode: "75011", PropertyType: "apartment"},
				SelectedLots: []api.SelectedLot{{Type: "painting"}, {Type: "electrical", Priority: "high"}},
			})
			Expect(created.SelectedLots).To(HaveLen(2))
			Expect(created.SelectedLots[0].Priority).To(Equal("medium"))
			Expect(created.SelectedLots[1].Position).To(Equal(1))

			rec := do(http.MethodGet, "/api/v1/projects/"+created.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var project api.Project
			decode(rec, &project)
			Expect(project.Name).To(Equal("flat"))
			Expect(project.Property.PostalCode).To(Equal("75011"))
			Expect(project.WorkProject).To(BeNil())
		})

		It("lists projects", func() {
			for _, name := range []string{"kitchen", "attic"} {
				tx := gormdb.Exec(fmt.Sprintf(insertProjectStm, uuid.New(), name, "jane@example.com", "house"))
				Expect(tx.Error).To(BeNil())
			}

			rec := do(http.MethodGet, "/api/v1/projects", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var projects api.ProjectList
			decode(rec, &projects)
			Expect(projects).To(HaveLen(2))

			rec = do(http.MethodGet, "/api/v1/projects?name=ATT", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			decode(rec, &projects)
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].Name).To(Equal("attic"))
		})

		It("rejects an invalid project", func() {
			rec := do(http.MethodPost, "/api/v1/projects", api.ProjectCreate{
				Name:     "flat",
				Property: &api.Property{PostalCode: "abc"},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 on a missing project", func() {
			rec := do(http.MethodGet, "/api/v1/projects/"+uuid.NewString(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			var e api.Error
			decode(rec, &e)
			Expect(e.Message).To(ContainSubstring("not found"))
		})

		It("returns 400 on a malformed id", func() {
			rec := do(http.MethodGet, "/api/v1/projects/not-a-uuid", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("updates a project", func() {
			created := createProject(api.ProjectCreate{Name: "flat", SelectedLots: []api.SelectedLot{{Type: "painting"}}})

			rec := do(http.MethodPut, "/api/v1/projects/"+created.Id.String(), api.ProjectUpdate{
				WorkProject: &api.WorkProject{FinishLevel: "luxury"},
			})
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())

			var project api.Project
			decode(rec, &project)
			Expect(project.Name).To(Equal("flat"))
			Expect(project.WorkProject.FinishLevel).To(Equal("luxury"))
			Expect(project.SelectedLots).To(HaveLen(1))
		})

		It("deletes a project", func() {
			created := createProject(api.ProjectCreate{Name: "flat"})

			rec := do(http.MethodDelete, "/api/v1/projects/"+created.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(http.MethodDelete, "/api/v1/projects/"+created.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("lots", func() {
		It("adds, updates and removes a lot", func() {
			created := createProject(api.ProjectCreate{Name: "flat"})
			lotsPath := "/api/v1/projects/" + created.Id.String() + "/lots"

			rec := do(http.MethodPost, lotsPath, api.SelectedLot{Type: "tiling"})
			Expect(rec.Code).To(Equal(http.StatusCreated), rec.Body.String())
			var lot api.Lot
			decode(rec, &lot)
			Expect(lot.Category).To(Equal("finishes"))

			rec = do(http.MethodPost, lotsPath, api.SelectedLot{Type: "tiling"})
			Expect(rec.Code).To(Equal(http.StatusConflict))

			rec = do(http.MethodPut, lotsPath+"/"+lot.Id.String(), api.LotUpdate{
				IsUrgent:        ptr(true),
				EstimatedBudget: &api.Range{Min: 1000, Max: 1500},
			})
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())
			decode(rec, &lot)
			Expect(lot.IsUrgent).To(BeTrue())
			Expect(lot.EstimatedBudget).To(Equal(&api.Range{Min: 1000, Max: 1500}))

			rec = do(http.MethodGet, lotsPath+"/stats", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var stats api.LotStats
			decode(rec, &stats)
			Expect(stats.TotalLots).To(Equal(1))
			Expect(stats.UrgentCount).To(Equal(1))
			Expect(stats.ByCategory["finishes"]).To(Equal(1))
			Expect(stats.ByCategory).To(HaveKeyWithValue("structural", 0))

			rec = do(http.MethodDelete, lotsPath+"/"+lot.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(http.MethodDelete, lotsPath+"/"+lot.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 404 when adding to a missing project", func() {
			rec := do(http.MethodPost, "/api/v1/projects/"+uuid.NewString()+"/lots", api.SelectedLot{Type: "tiling"})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("stored estimations", func() {
		It("estimates a stored project", func() {
			created := createProject(api.ProjectCreate{
				Name:         "flat",
				Property:     &api.Property{LivingAreaSqm: ptr(60.0)},
				SelectedLots: []api.SelectedLot{{Type: "painting"}},
			})

			rec := do(http.MethodGet, "/api/v1/projects/"+created.Id.String()+"/estimation", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var est api.Estimation
			decode(rec, &est)
			Expect(est.Budget.ByLot).To(HaveLen(1))
		})

		It("requires an envelope for the stored comparison", func() {
			created := createProject(api.ProjectCreate{Name: "flat", SelectedLots: []api.SelectedLot{{Type: "painting"}}})

			rec := do(http.MethodGet, "/api/v1/projects/"+created.Id.String()+"/budget-comparison", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("downloads a report", func() {
			created := createProject(api.ProjectCreate{Name: "My Flat", SelectedLots: []api.SelectedLot{{Type: "painting"}}})

			rec := do(http.MethodGet, "/api/v1/projects/"+created.Id.String()+"/report?format=csv", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("text/csv"))
			Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring("my-flat-"))
			Expect(rec.Body.Len()).To(BeNumerically(">", 0))
		})

		It("refuses to publish without an object store", func() {
			created := createProject(api.ProjectCreate{Name: "flat", SelectedLots: []api.SelectedLot{{Type: "painting"}}})

			rec := do(http.MethodGet, "/api/v1/projects/"+created.Id.String()+"/report?format=csv&publish=true", nil)
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(rec.Header().Get("Content-Location")).To(BeEmpty())

			var e api.Error
			decode(rec, &e)
			Expect(e.Message).To(ContainSubstring("publishing is disabled"))
		})

		It("rejects an unsupported report format", func() {
			created := createProject(api.ProjectCreate{Name: "flat"})

			rec := do(http.MethodGet, "/api/v1/projects/"+created.Id.String()+"/report?format=pdf", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
