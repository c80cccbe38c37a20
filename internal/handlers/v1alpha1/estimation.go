package v1alpha1

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renovplan/renovation-planner/internal/service"
	srvMappers "github.com/renovplan/renovation-planner/internal/service/mappers"
)

// (POST /api/v1/estimations)
func (h *ServiceHandler) CreateEstimation(w http.ResponseWriter, r *http.Request) {
	var form api.ProjectSnapshot
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	result := h.estimationSrv.Estimate(r.Context(), mappers.SnapshotToEstimation(form))
	writeJSON(w, r, http.StatusOK, result)
}

// (POST /api/v1/estimations/budget-comparison)
func (h *ServiceHandler) CreateBudgetComparison(w http.ResponseWriter, r *http.Request) {
	var form api.ProjectSnapshot
	if !h.decodeAndValidate(w, r, &form) {
		return
	}
	if form.WorkProject == nil || form.WorkProject.BudgetEnvelope == nil {
		writeError(w, r, http.StatusBadRequest, "workProject.budgetEnvelope is required")
		return
	}

	comparison, result := h.estimationSrv.CompareBudget(r.Context(), mappers.SnapshotToEstimation(form))
	writeJSON(w, r, http.StatusOK, mappers.BudgetComparisonToApi(comparison, result))
}

// (POST /api/v1/compatibility)
func (h *ServiceHandler) CheckCompatibility(w http.ResponseWriter, r *http.Request) {
	var form api.CompatibilityRequest
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	report, err := h.estimationSrv.CheckCompatibility(r.Context(), mappers.LotTypesFromApi(form.LotTypes))
	if err != nil {
		writeServiceError(w, r, err, "failed to check compatibility")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.CompatibilityToApi(report))
}

// (GET /api/v1/projects/{id}/estimation)
func (h *ServiceHandler) GetProjectEstimation(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	result, err := h.estimationSrv.EstimateStoredProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to estimate project")
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

// (GET /api/v1/projects/{id}/budget-comparison)
func (h *ServiceHandler) GetProjectBudgetComparison(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	comparison, result, err := h.estimationSrv.CompareStoredBudget(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to compare budget")
		return
	}
	writeJSON(w, r, http.StatusOK, mappers.BudgetComparisonToApi(comparison, result))
}

// (GET /api/v1/projects/{id}/report)
func (h *ServiceHandler) GetProjectReport(w http.ResponseWriter, r *http.Request, id uuid.UUID, params server.GetProjectReportParams) {
	format := service.ReportFormatCSV
	if params.Format != nil {
		format = service.ReportFormat(*params.Format)
	}

	project, err := h.projectSrv.GetProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to get project")
		return
	}

	snapshot := srvMappers.ProjectToEstimation(*project)
	result := h.estimationSrv.Estimate(r.Context(), snapshot)

	report, err := h.reportSrv.GenerateReport(project.Name, snapshot, result, service.ReportOptions{Format: format, IncludeWarnings: true})
	if err != nil {
		writeServiceError(w, r, err, "failed to generate report")
		return
	}

	if params.Publish != nil && *params.Publish {
		if err := h.reportSrv.PublishReport(r.Context(), report); err != nil {
			writeServiceError(w, r, err, "failed to publish report")
			return
		}
		if report.Location != "" {
			w.Header().Set("Content-Location", report.Location)
		}
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+report.Name+"\"")
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Content); err != nil {
		zap.S().Named("handlers").Warnw("failed to write report", "error", err, "project_id", id)
	}
}
