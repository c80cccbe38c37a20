package v1alpha1

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/api/server"
	"github.com/renovplan/renovation-planner/internal/handlers/validator"
	"github.com/renovplan/renovation-planner/internal/service"
	"github.com/renovplan/renovation-planner/pkg/requestid"
)

var _ server.ServerInterface = (*ServiceHandler)(nil)

type ServiceHandler struct {
	estimationSrv *service.EstimationService
	projectSrv    *service.ProjectService
	reportSrv     *service.ReportService
	validator     *validator.Validator
}

func NewServiceHandler(estimationService *service.EstimationService, projectService *service.ProjectService, reportService *service.ReportService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewProjectValidationRules(estimationService.Catalog())...)

	return &ServiceHandler{
		estimationSrv: estimationService,
		projectSrv:    projectService,
		reportSrv:     reportService,
		validator:     v,
	}
}

// decodeAndValidate reads the JSON body into dst and validates it. It writes the 400 response on failure.
func (h *ServiceHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		writeError(w, r, http.StatusBadRequest, "empty body")
		return false
	}
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid body: "+err.Error())
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, validator.Message(err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, api.Error{Message: message, RequestId: requestid.FromRequest(r)})
}

// writeServiceError maps the service errors to their status code. Unknown errors are logged and
// reported as fallback without leaking their details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		notFound    *service.ErrResourceNotFound
		invalidLot  *service.ErrInvalidLot
		duplicate   *service.ErrDuplicateLot
		noEnvelope  *service.ErrMissingBudgetEnvelope
		unsupported *service.ErrUnsupportedReportFormat
		disabled    *service.ErrPublishingDisabled
	)

	switch {
	case errors.As(err, &notFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &duplicate):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.As(err, &invalidLot), errors.As(err, &noEnvelope), errors.As(err, &unsupported):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &disabled):
		writeError(w, r, http.StatusServiceUnavailable, err.Error())
	default:
		zap.S().Named("handlers").Errorw(fallback, "error", err, "request_id", requestid.FromRequest(r))
		writeError(w, r, http.StatusInternalServerError, fallback)
	}
}

// ErrorHandler reports invalid path and query parameters.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, err.Error())
}
