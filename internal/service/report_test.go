package service_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service"
)

type fakeUploader struct {
	names []string
	err   error
}

func (f *fakeUploader) Put(_ context.Context, name, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.names = append(f.names, name)
	return "reports/" + name, nil
}

var _ = Describe("Report Service", func() {
	var (
		project estimation.Project
		est     estimation.ProjectEstimation
	)

	BeforeEach(func() {
		project = estimation.Project{
			Property: &estimation.PropertyAttributes{LivingAreaSqm: ptr(40.0), PostalCode: "33000"},
			WorkProject: &estimation.WorkProjectAttributes{
				BudgetEnvelope: &estimation.EstimationRange{Min: 5000, Max: 9000},
			},
			SelectedLots: []estimation.SelectedLot{{Type: catalog.Painting, Category: catalog.CategoryFinishes}},
		}
		est = service.NewEstimationService(nil, nil).Estimate(context.TODO(), project)
	})

	It("supports three formats", func() {
		svc := service.NewReportService(nil)
		Expect(svc.Formats()).To(ConsistOf(service.ReportFormatCSV, service.ReportFormatXLSX, service.ReportFormatHTML))
	})

	It("renders every format", func() {
		svc := service.NewReportService(nil)
		for _, format := range svc.Formats() {
			report, err := svc.GenerateReport("My Flat", project, est, service.ReportOptions{Format: format, IncludeWarnings: true})
			Expect(err).To(BeNil())
			Expect(report.Content).ToNot(BeEmpty())
			Expect(report.ContentType).ToNot(BeEmpty())
			Expect(report.Name).To(HavePrefix("my-flat-"))
			Expect(report.Name).To(HaveSuffix("." + string(format)))
		}
	})

	It("names the report after the estimation when the project has no usable name", func() {
		svc := service.NewReportService(nil)
		report, err := svc.GenerateReport("???", project, est, service.ReportOptions{Format: service.ReportFormatCSV})
		Expect(err).To(BeNil())
		Expect(report.Name).To(HavePrefix("estimation-"))
	})

	It("renders the empty estimation", func() {
		svc := service.NewReportService(nil)
		empty := service.NewEstimationService(nil, nil).Estimate(context.TODO(), estimation.Project{})
		report, err := svc.GenerateReport("empty", estimation.Project{}, empty, service.ReportOptions{Format: service.ReportFormatCSV})
		Expect(err).To(BeNil())
		Expect(strings.Contains(string(report.Content), "NOTICE")).To(BeTrue())
	})

	It("rejects an unknown format", func() {
		svc := service.NewReportService(nil)
		_, err := svc.GenerateReport("flat", project, est, service.ReportOptions{Format: "pdf"})
		var unsupported *service.ErrUnsupportedReportFormat
		Expect(errors.As(err, &unsupported)).To(BeTrue())
	})

	Context("PublishReport", func() {
		It("fails without an uploader", func() {
			svc := service.NewReportService(nil)
			report, err := svc.GenerateReport("flat", project, est, service.ReportOptions{Format: service.ReportFormatHTML})
			Expect(err).To(BeNil())

			err = svc.PublishReport(context.TODO(), report)
			var disabled *service.ErrPublishingDisabled
			Expect(errors.As(err, &disabled)).To(BeTrue())
			Expect(report.Location).To(BeEmpty())
		})

		It("uploads the report", func() {
			uploader := &fakeUploader{}
			svc := service.NewReportService(uploader)
			report, err := svc.GenerateReport("flat", project, est, service.ReportOptions{Format: service.ReportFormatXLSX})
			Expect(err).To(BeNil())

			Expect(svc.PublishReport(context.TODO(), report)).To(BeNil())
			Expect(uploader.names).To(Equal([]string{report.Name}))
			Expect(report.Location).To(Equal("reports/" + report.Name))
		})

		It("returns the upload error", func() {
			svc := service.NewReportService(&fakeUploader{err: errors.New("bucket unavailable")})
			report, err := svc.GenerateReport("flat", project, est, service.ReportOptions{Format: service.ReportFormatCSV})
			Expect(err).To(BeNil())

			Expect(svc.PublishReport(context.TODO(), report)).ToNot(BeNil())
			Expect(report.Location).To(BeEmpty())
		})
	})
})
