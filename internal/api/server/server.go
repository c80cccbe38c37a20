// Package server binds the routes of api/v1alpha1/openapi.yaml to a ServerInterface.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	Health(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/info)
	GetInfo(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/catalog)
	ListCatalog(w http.ResponseWriter, r *http.Request, params ListCatalogParams)
	// (POST /api/v1/estimations)
	CreateEstimation(w http.ResponseWriter, r *http.Request)
	// (POST /api/v1/estimations/budget-comparison)
	CreateBudgetComparison(w http.ResponseWriter, r *http.Request)
	// (POST /api/v1/compatibility)
	CheckCompatibility(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/projects)
	ListProjects(w http.ResponseWriter, r *http.Request, params ListProjectsParams)
	// (POST /api/v1/projects)
	CreateProject(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/projects/{id})
	GetProject(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (PUT /api/v1/projects/{id})
	UpdateProject(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (DELETE /api/v1/projects/{id})
	DeleteProject(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (POST /api/v1/projects/{id}/lots)
	AddLot(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (GET /api/v1/projects/{id}/lots/stats)
	GetLotStats(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (PUT /api/v1/projects/{id}/lots/{lotId})
	UpdateLot(w http.ResponseWriter, r *http.Request, id uuid.UUID, lotId uuid.UUID)
	// (DELETE /api/v1/projects/{id}/lots/{lotId})
	RemoveLot(w http.ResponseWriter, r *http.Request, id uuid.UUID, lotId uuid.UUID)
	// (GET /api/v1/projects/{id}/estimation)
	GetProjectEstimation(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (GET /api/v1/projects/{id}/budget-comparison)
	GetProjectBudgetComparison(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	// (GET /api/v1/projects/{id}/report)
	GetProjectReport(w http.ResponseWriter, r *http.Request, id uuid.UUID, params GetProjectReportParams)
}

type ListCatalogParams struct {
	Category    *string  `form:"category,omitempty" json:"category,omitempty"`
	Rge         *bool    `form:"rge,omitempty" json:"rge,omitempty"`
	Search      *string  `form:"search,omitempty" json:"search,omitempty"`
	MaxBudget   *float64 `form:"maxBudget,omitempty" json:"maxBudget,omitempty"`
	MaxDuration *int     `form:"maxDuration,omitempty" json:"maxDuration,omitempty"`
}

type ListProjectsParams struct {
	OwnerEmail   *string `form:"ownerEmail,omitempty" json:"ownerEmail,omitempty"`
	Name         *string `form:"name,omitempty" json:"name,omitempty"`
	PropertyType *string `form:"propertyType,omitempty" json:"propertyType,omitempty"`
	Limit        *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset       *int    `form:"offset,omitempty" json:"offset,omitempty"`
}

type GetProjectReportParams struct {
	Format  *string `form:"format,omitempty" json:"format,omitempty"`
	Publish *bool   `form:"publish,omitempty" json:"publish,omitempty"`
}

type MiddlewareFunc func(http.Handler) http.Handler

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// ServerInterfaceWrapper converts path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return uuid.Nil, false
	}
	return id, true
}

func (siw *ServerInterfaceWrapper) query(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) Health(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.Health))
}

func (siw *ServerInterfaceWrapper) GetInfo(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetInfo))
}

func (siw *ServerInterfaceWrapper) ListCatalog(w http.ResponseWriter, r *http.Request) {
	var params ListCatalogParams
	if !siw.query(w, r, "category", &params.Category) ||
		!siw.query(w, r, "rge", &params.Rge) ||
		!siw.query(w, r, "search", &params.Search) ||
		!siw.query(w, r, "maxBudget", &params.MaxBudget) ||
		!siw.query(w, r, "maxDuration", &params.MaxDuration) {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListCatalog(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) CreateEstimation(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateEstimation))
}

func (siw *ServerInterfaceWrapper) CreateBudgetComparison(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateBudgetComparison))
}

func (siw *ServerInterfaceWrapper) CheckCompatibility(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CheckCompatibility))
}

func (siw *ServerInterfaceWrapper) ListProjects(w http.ResponseWriter, r *http.Request) {
	var params ListProjectsParams
	if !siw.query(w, r, "ownerEmail", &params.OwnerEmail) ||
		!siw.query(w, r, "name", &params.Name) ||
		!siw.query(w, r, "propertyType", &params.PropertyType) ||
		!siw.query(w, r, "limit", &params.Limit) ||
		!siw.query(w, r, "offset", &params.Offset) {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListProjects(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) CreateProject(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateProject))
}

// withID serves the handler of a /api/v1/projects/{id} route.
func (siw *ServerInterfaceWrapper) withID(fn func(w http.ResponseWriter, r *http.Request, id uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := siw.pathUUID(w, r, "id")
		if !ok {
			return
		}
		siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fn(w, r, id)
		}))
	}
}

// withLotID serves the handler of a /api/v1/projects/{id}/lots/{lotId} route.
func (siw *ServerInterfaceWrapper) withLotID(fn func(w http.ResponseWriter, r *http.Request, id uuid.UUID, lotId uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := siw.pathUUID(w, r, "id")
		if !ok {
			return
		}
		lotId, ok := siw.pathUUID(w, r, "lotId")
		if !ok {
			return
		}
		siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fn(w, r, id, lotId)
		}))
	}
}

func (siw *ServerInterfaceWrapper) GetProjectReport(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathUUID(w, r, "id")
	if !ok {
		return
	}
	var params GetProjectReportParams
	if !siw.query(w, r, "format", &params.Format) || !siw.query(w, r, "publish", &params.Publish) {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetProjectReport(w, r, id, params)
	}))
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.Health)
		r.Get(options.BaseURL+"/api/v1/info", wrapper.GetInfo)
		r.Get(options.BaseURL+"/api/v1/catalog", wrapper.ListCatalog)
		r.Post(options.BaseURL+"/api/v1/estimations", wrapper.CreateEstimation)
		r.Post(options.BaseURL+"/api/v1/estimations/budget-comparison", wrapper.CreateBudgetComparison)
		r.Post(options.BaseURL+"/api/v1/compatibility", wrapper.CheckCompatibility)
		r.Get(options.BaseURL+"/api/v1/projects", wrapper.ListProjects)
		r.Post(options.BaseURL+"/api/v1/projects", wrapper.CreateProject)
		r.Get(options.BaseURL+"/api/v1/projects/{id}", wrapper.withID(si.GetProject))
		r.Put(options.BaseURL+"/api/v1/projects/{id}", wrapper.withID(si.UpdateProject))
		r.Delete(options.BaseURL+"/api/v1/projects/{id}", wrapper.withID(si.DeleteProject))
		r.Post(options.BaseURL+"/api/v1/projects/{id}/lots", wrapper.withID(si.AddLot))
		r.Get(options.BaseURL+"/api/v1/projects/{id}/lots/stats", wrapper.withID(si.GetLotStats))
		r.Put(options.BaseURL+"/api/v1/projects/{id}/lots/{lotId}", wrapper.withLotID(si.UpdateLot))
		r.Delete(options.BaseURL+"/api/v1/projects/{id}/lots/{lotId}", wrapper.withLotID(si.RemoveLot))
		r.Get(options.BaseURL+"/api/v1/projects/{id}/estimation", wrapper.withID(si.GetProjectEstimation))
		r.Get(options.BaseURL+"/api/v1/projects/{id}/budget-comparison", wrapper.withID(si.GetProjectBudgetComparison))
		r.Get(options.BaseURL+"/api/v1/projects/{id}/report", wrapper.GetProjectReport)
	})

	return r
}
