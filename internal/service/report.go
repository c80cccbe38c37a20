package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service/report/csv"
	"github.com/renovplan/renovation-planner/internal/service/report/html"
	"github.com/renovplan/renovation-planner/internal/service/report/types"
	"github.com/renovplan/renovation-planner/internal/service/report/xlsx"
	"github.com/renovplan/renovation-planner/pkg/metrics"
	"github.com/renovplan/renovation-planner/pkg/objectstore"
	"go.uber.org/zap"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportOptions = types.ReportOptions
type ReportData = types.ReportData

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatXLSX = types.ReportFormatXLSX
	ReportFormatHTML = types.ReportFormatHTML
)

// Report is a rendered estimation document.
type Report struct {
	Name        string
	ContentType string
	Content     []byte
	// Location is set once the report has been published to the object store.
	Location string
}

type ReportService struct {
	renderers map[types.ReportFormat]types.ReportRenderer
	uploader  objectstore.Uploader
	now       func() time.Time
}

// NewReportService creates a ReportService with the csv, xlsx and html renderers.
// Reports can be published only when an uploader is given.
func NewReportService(uploader objectstore.Uploader) *ReportService {
	service := &ReportService{
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
		uploader:  uploader,
		now:       time.Now,
	}

	for _, r := range []types.ReportRenderer{csv.NewRenderer(), xlsx.NewRenderer(), html.NewRenderer()} {
		service.renderers[r.SupportedFormat()] = r
	}

	return service
}

// Formats returns the supported report formats.
func (r *ReportService) Formats() []ReportFormat {
	return []ReportFormat{ReportFormatCSV, ReportFormatXLSX, ReportFormatHTML}
}

// GenerateReport renders the estimation of project. The empty estimation renders a notice.
func (r *ReportService) GenerateReport(name string, project estimation.Project, est estimation.ProjectEstimation, options ReportOptions) (*Report, error) {
	renderer, exists := r.renderers[options.Format]
	if !exists {
		return nil, NewErrUnsupportedReportFormat(string(options.Format))
	}

	now := r.now()
	content, err := renderer.Render(types.NewReportData(name, project, est, options, now))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", options.Format, err)
	}

	metrics.IncreaseReportsTotalMetric(string(options.Format))

	return &Report{
		Name:        reportName(name, options.Format, now),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

// PublishReport uploads the report to the object store.
// It returns ErrPublishingDisabled when the service has no uploader.
func (r *ReportService) PublishReport(ctx context.Context, report *Report) error {
	if r.uploader == nil {
		return NewErrPublishingDisabled()
	}

	location, err := r.uploader.Put(ctx, report.Name, report.ContentType, report.Content)
	if err != nil {
		return err
	}
	report.Location = location

	zap.S().Named("report_service").Infow("report published", "location", location)
	return nil
}

// reportName builds a file name from the project name: lower case, spaces replaced by dashes.
func reportName(project string, format ReportFormat, at time.Time) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, project)
	if base == "" {
		base = "estimation"
	}
	return fmt.Sprintf("%s-%s.%s", base, at.UTC().Format("20060102-150405"), format)
}
