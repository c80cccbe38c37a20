package types

import (
	"time"

	"github.com/renovplan/renovation-planner/internal/estimation"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
	ContentType() string
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatHTML ReportFormat = "html"
)

type ReportOptions struct {
	Format          ReportFormat
	IncludeWarnings bool
}

// ReportData is everything a renderer needs to print an estimation.
type ReportData struct {
	ProjectName string
	Project     estimation.Project
	Estimation  estimation.ProjectEstimation
	// Comparison is set when the project carries a budget envelope.
	Comparison *estimation.BudgetComparison
	Options    ReportOptions
	Timestamps ReportTimestamps
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}

// NewReportData assembles the report of an estimation computed for project.
func NewReportData(name string, project estimation.Project, est estimation.ProjectEstimation, options ReportOptions, now time.Time) *ReportData {
	data := &ReportData{
		ProjectName: name,
		Project:     project,
		Estimation:  est,
		Options:     options,
		Timestamps: ReportTimestamps{
			Generated:     now.Format("January 2, 2006"),
			GeneratedTime: now.Format("15:04:05"),
		},
	}

	if wp := project.WorkProject; wp != nil && wp.BudgetEnvelope != nil && !est.IsEmpty() {
		comparison := estimation.CompareBudgetWithTarget(est.Budget.Total, *wp.BudgetEnvelope)
		data.Comparison = &comparison
	}

	return data
}

// Empty reports whether there is nothing estimated to print.
func (d *ReportData) Empty() bool {
	return d.Estimation.IsEmpty()
}
