package v1alpha1

import (
	"fmt"
	"net/http"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renovplan/renovation-planner/pkg/version"
)

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	writeJSON(w, r, http.StatusOK, api.Info{
		GitCommit:      versionInfo.GitCommit,
		VersionName:    versionInfo.GitVersion,
		CatalogVersion: h.estimationSrv.Catalog().Version(),
	})
}

// (GET /api/v1/catalog)
func (h *ServiceHandler) ListCatalog(w http.ResponseWriter, r *http.Request, params server.ListCatalogParams) {
	cat := h.estimationSrv.Catalog()
	if params.Category != nil && !catalog.Category(*params.Category).IsValid() {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown category %q", *params.Category))
		return
	}

	writeJSON(w, r, http.StatusOK, mappers.CatalogToApi(cat.Version(), cat.Filter(mappers.CatalogCriteria(params))))
}
