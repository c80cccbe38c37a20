package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	csvRows := r.addHeader(nil, data)

	if data.Empty() {
		return r.generateEmptyReport(csvRows, data)
	}

	est := data.Estimation
	csvRows = r.addBudgetSummary(csvRows, est.Budget)
	csvRows = r.addLotBudgets(csvRows, est.Budget.ByLot)
	csvRows = r.addCategoryBudgets(csvRows, est.Budget.ByCategory)
	csvRows = r.addFees(csvRows, est.Budget.Fees)
	csvRows = r.addDuration(csvRows, est.Duration)
	csvRows = r.addFactors(csvRows, est.Factors)

	if data.Comparison != nil {
		csvRows = r.addComparison(csvRows, *data.Comparison)
	}

	if data.Options.IncludeWarnings {
		csvRows = r.addWarnings(csvRows, est.Warnings)
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addHeader(csvRows [][]string, data *types.ReportData) [][]string {
	csvRows = append(csvRows, []string{"RENOVATION PROJECT ESTIMATION REPORT"})
	if data.ProjectName != "" {
		csvRows = append(csvRows, []string{fmt.Sprintf("Project: %s", data.ProjectName)})
	}
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) generateEmptyReport(csvRows [][]string, data *types.ReportData) ([]byte, error) {
	csvRows = append(csvRows,
		[]string{"NOTICE"},
		[]string{""},
		[]string{"No estimation is available for this project."},
	)
	for _, w := range data.Estimation.Warnings {
		csvRows = append(csvRows, []string{w})
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addBudgetSummary(csvRows [][]string, budget estimation.BudgetEstimation) [][]string {
	csvRows = append(csvRows, []string{"BUDGET SUMMARY"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Item", "Min (EUR)", "Max (EUR)"})
	csvRows = append(csvRows, rangeRow("Works subtotal", budget.Subtotal))
	csvRows = append(csvRows, rangeRow("Contingency", budget.Contingency))
	csvRows = append(csvRows, rangeRow("Fees", budget.Fees.Total()))
	csvRows = append(csvRows, rangeRow("Total", budget.Total))
	csvRows = append(csvRows, []string{
		"Contingency rate",
		fmt.Sprintf("%.0f%%", budget.ContingencyRate.Min*100),
		fmt.Sprintf("%.0f%%", budget.ContingencyRate.Max*100)})
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addLotBudgets(csvRows [][]string, lots []estimation.LotBudgetEstimation) [][]string {
	csvRows = append(csvRows, []string{"BUDGET BY LOT"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Lot", "Category", "Min (EUR)", "Max (EUR)", "Basis"})
	for _, lot := range lots {
		csvRows = append(csvRows, []string{
			lot.LotName,
			lot.Category.DisplayName(),
			money(lot.Estimate.Min),
			money(lot.Estimate.Max),
			string(lot.Basis)})
	}
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addCategoryBudgets(csvRows [][]string, categories []estimation.CategoryBudgetEstimation) [][]string {
	csvRows = append(csvRows, []string{"BUDGET BY CATEGORY"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Category", "Min (EUR)", "Max (EUR)", "Share"})
	for _, c := range categories {
		csvRows = append(csvRows, []string{
			c.CategoryName,
			money(c.Estimate.Min),
			money(c.Estimate.Max),
			fmt.Sprintf("%d%%", c.Percentage)})
	}
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addFees(csvRows [][]string, fees estimation.FeesEstimation) [][]string {
	csvRows = append(csvRows, []string{"FEES"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Fee", "Min (EUR)", "Max (EUR)"})
	csvRows = append(csvRows, rangeRow("Architect", fees.Architect))
	csvRows = append(csvRows, rangeRow("Permits", fees.Permits))
	csvRows = append(csvRows, rangeRow("Insurance", fees.Insurance))
	csvRows = append(csvRows, rangeRow("Coordination", fees.Coordination))
	csvRows = append(csvRows, rangeRow("Other", fees.Other))
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addDuration(csvRows [][]string, duration estimation.DurationEstimation) [][]string {
	csvRows = append(csvRows, []string{"SCHEDULE"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Total working days", fmt.Sprintf("%.0f", duration.TotalDays.Min), fmt.Sprintf("%.0f", duration.TotalDays.Max)})
	csvRows = append(csvRows, []string{"Total weeks", fmt.Sprintf("%.0f", duration.TotalWeeks.Min), fmt.Sprintf("%.0f", duration.TotalWeeks.Max)})
	csvRows = append(csvRows, []string{"Parallelization", fmt.Sprintf("%.2f", duration.Parallelization)})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Phase", "Lots", "Min days", "Max days", "Parallel"})
	for _, p := range duration.Phases {
		csvRows = append(csvRows, []string{
			p.Name,
			fmt.Sprintf("%d", len(p.Lots)),
			fmt.Sprintf("%.0f", p.DurationDays.Min),
			fmt.Sprintf("%.0f", p.DurationDays.Max),
			fmt.Sprintf("%v", p.CanParallelize)})
	}
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addFactors(csvRows [][]string, factors []estimation.EstimationFactor) [][]string {
	if len(factors) == 0 {
		return csvRows
	}
	csvRows = append(csvRows, []string{"ADJUSTMENT FACTORS"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Factor", "Impact", "Percentage", "Description"})
	for _, f := range factors {
		csvRows = append(csvRows, []string{
			f.Name,
			string(f.Impact),
			fmt.Sprintf("%+d%%", f.Percentage),
			f.Description})
	}
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addComparison(csvRows [][]string, c estimation.BudgetComparison) [][]string {
	csvRows = append(csvRows, []string{"BUDGET ENVELOPE"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Status", string(c.Status)})
	csvRows = append(csvRows, []string{"Variance", fmt.Sprintf("%+d%%", c.Variance)})
	csvRows = append(csvRows, []string{"Recommendation", c.Recommendation})
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addWarnings(csvRows [][]string, warnings []string) [][]string {
	if len(warnings) == 0 {
		return csvRows
	}
	csvRows = append(csvRows, []string{"WARNINGS"})
	csvRows = append(csvRows, []string{""})
	for _, w := range warnings {
		csvRows = append(csvRows, []string{w})
	}
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.WriteAll(csvRows); err != nil {
		return nil, fmt.Errorf("failed to write CSV data: %w", err)
	}

	return buf.Bytes(), nil
}

func rangeRow(label string, r estimation.EstimationRange) []string {
	return []string{label, money(r.Min), money(r.Max)}
}

func money(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
