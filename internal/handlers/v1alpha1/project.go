package v1alpha1

import (
	"net/http"

	"github.com/google/uuid"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renovplan/renovation-planner/internal/service"
)

// (GET /api/v1/projects)
func (h *ServiceHandler) ListProjects(w http.ResponseWriter, r *http.Request, params server.ListProjectsParams) {
	filter := service.NewProjectFilter()
	if params.OwnerEmail != nil {
		filter = filter.WithOwnerEmail(*params.OwnerEmail)
	}
	if params.Name != nil {
		filter = filter.WithNameLike("%" + *params.Name + "%")
	}
	if params.PropertyType != nil {
		filter = filter.WithPropertyType(*params.PropertyType)
	}
	if params.Limit != nil {
		filter = filter.WithLimit(*params.Limit)
	}
	if params.Offset != nil {
		filter = filter.WithOffset(*params.Offset)
	}

	projects, err := h.projectSrv.ListProjects(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "failed to list projects")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.ProjectListToApi(projects))
}

// (POST /api/v1/projects)
func (h *ServiceHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var form api.ProjectCreate
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	project, err := h.projectSrv.CreateProject(r.Context(), mappers.ProjectCreateToForm(form))
	if err != nil {
		writeServiceError(w, r, err, "failed to create project")
		return
	}
	writeJSON(w, r, http.StatusCreated, mappers.ProjectToApi(*project))
}

// (GET /api/v1/projects/{id})
func (h *ServiceHandler) GetProject(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	project, err := h.projectSrv.GetProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to get project")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.ProjectToApi(*project))
}

// (PUT /api/v1/projects/{id})
func (h *ServiceHandler) UpdateProject(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var form api.ProjectUpdate
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	project, err := h.projectSrv.UpdateProject(r.Context(), id, mappers.ProjectUpdateToForm(form))
	if err != nil {
		writeServiceError(w, r, err, "failed to update project")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.ProjectToApi(*project))
}

// (DELETE /api/v1/projects/{id})
func (h *ServiceHandler) DeleteProject(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.projectSrv.DeleteProject(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "failed to delete project")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// (POST /api/v1/projects/{id}/lots)
func (h *ServiceHandler) AddLot(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var form api.SelectedLot
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	lot, err := h.projectSrv.AddLot(r.Context(), id, mappers.LotFromApi(form))
	if err != nil {
		writeServiceError(w, r, err, "failed to add lot")
		return
	}
	writeJSON(w, r, http.StatusCreated, mappers.LotToApi(*lot))
}

// (GET /api/v1/projects/{id}/lots/stats)
func (h *ServiceHandler) GetLotStats(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	stats, err := h.projectSrv.LotStats(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to compute lot statistics")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.LotStatsToApi(*stats))
}

// (PUT /api/v1/projects/{id}/lots/{lotId})
func (h *ServiceHandler) UpdateLot(w http.ResponseWriter, r *http.Request, id uuid.UUID, lotId uuid.UUID) {
	var form api.LotUpdate
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	lot, err := h.projectSrv.UpdateLot(r.Context(), id, lotId, mappers.LotUpdateToForm(form))
	if err != nil {
		writeServiceError(w, r, err, "failed to update lot")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.LotToApi(*lot))
}

// (DELETE /api/v1/projects/{id}/lots/{lotId})
func (h *ServiceHandler) RemoveLot(w http.ResponseWriter, r *http.Request, id uuid.UUID, lotId uuid.UUID) {
	if err := h.projectSrv.RemoveLot(r.Context(), id, lotId); err != nil {
		writeServiceError(w, r, err, "failed to remove lot")
		return
	}
	w.WriteHeader(http.StatusOK)
}
