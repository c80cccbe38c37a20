package xlsx

import (
	"bytes"
	"fmt"

	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service/report/types"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Summary"
	LotsSheet     = "Lots"
	ScheduleSheet = "Schedule"
	WarningsSheet = "Warnings"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes one sheet per section. An empty estimation yields a single summary sheet.
func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}

	if err := r.writeSummary(f, data); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	if !data.Empty() {
		est := data.Estimation
		if err := r.writeLots(f, est.Budget); err != nil {
			return nil, fmt.Errorf("failed to write lots: %w", err)
		}
		if err := r.writeSchedule(f, est.Duration); err != nil {
			return nil, fmt.Errorf("failed to write schedule: %w", err)
		}
	}

	if data.Options.IncludeWarnings && len(data.Estimation.Warnings) > 0 {
		rows := make([][]interface{}, 0, len(data.Estimation.Warnings))
		for _, w := range data.Estimation.Warnings {
			rows = append(rows, []interface{}{w})
		}
		if err := writeSheet(f, WarningsSheet, []string{"Warning"}, rows); err != nil {
			return nil, fmt.Errorf("failed to write warnings: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeSummary(f *excelize.File, data *types.ReportData) error {
	rows := [][]interface{}{
		{"Renovation project estimation report"},
		{"Project", data.ProjectName},
		{"Generated", fmt.Sprintf("%s at %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)},
		{},
	}

	if data.Empty() {
		rows = append(rows, []interface{}{"No estimation is available for this project."})
		return setRows(f, SummarySheet, 1, rows)
	}

	est := data.Estimation
	rows = append(rows,
		[]interface{}{"Item", "Min (EUR)", "Max (EUR)"},
		rangeRow("Works subtotal", est.Budget.Subtotal),
		rangeRow("Contingency", est.Budget.Contingency),
		rangeRow("Architect fees", est.Budget.Fees.Architect),
		rangeRow("Permit fees", est.Budget.Fees.Permits),
		rangeRow("Insurance", est.Budget.Fees.Insurance),
		rangeRow("Coordination", est.Budget.Fees.Coordination),
		rangeRow("Other fees", est.Budget.Fees.Other),
		rangeRow("Total", est.Budget.Total),
		[]interface{}{},
		rangeRow("Working days", est.Duration.TotalDays),
		rangeRow("Weeks", est.Duration.TotalWeeks),
		[]interface{}{"Confidence", est.Confidence},
	)

	if c := data.Comparison; c != nil {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Budget envelope", string(c.Status)},
			[]interface{}{"Variance (%)", c.Variance},
			[]interface{}{"Recommendation", c.Recommendation},
		)
	}

	return setRows(f, SummarySheet, 1, rows)
}

func (r *Renderer) writeLots(f *excelize.File, budget estimation.BudgetEstimation) error {
	rows := make([][]interface{}, 0, len(budget.ByLot))
	for _, lot := range budget.ByLot {
		rows = append(rows, []interface{}{
			lot.LotName,
			lot.Category.DisplayName(),
			lot.Estimate.Min,
			lot.Estimate.Max,
			string(lot.Basis),
		})
	}
	return writeSheet(f, LotsSheet, []string{"Lot", "Category", "Min (EUR)", "Max (EUR)", "Basis"}, rows)
}

func (r *Renderer) writeSchedule(f *excelize.File, duration estimation.DurationEstimation) error {
	rows := make([][]interface{}, 0, len(duration.Phases))
	for _, p := range duration.Phases {
		rows = append(rows, []interface{}{
			p.Name,
			len(p.Lots),
			p.DurationDays.Min,
			p.DurationDays.Max,
			p.CanParallelize,
		})
	}
	return writeSheet(f, ScheduleSheet, []string{"Phase", "Lots", "Min days", "Max days", "Parallel"}, rows)
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	return setRows(f, sheet, 1, append([][]interface{}{header}, rows...))
}

func setRows(f *excelize.File, sheet string, firstRow int, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, firstRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func rangeRow(label string, r estimation.EstimationRange) []interface{} {
	return []interface{}{label, r.Min, r.Max}
}
