package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service/report/types"
	"github.com/renovplan/renovation-planner/internal/service/report/xlsx"
)

func render(t *testing.T, lots []estimation.SelectedLot) *excelize.File {
	t.Helper()
	project := estimation.Project{SelectedLots: lots}
	est := estimation.NewEngine(nil).EstimateProject(project)
	data := types.NewReportData("attic", project, est, types.ReportOptions{Format: types.ReportFormatXLSX, IncludeWarnings: true}, time.Now())

	out, err := xlsx.NewRenderer().Render(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRender(t *testing.T) {
	f := render(t, []estimation.SelectedLot{{Type: catalog.Painting}, {Type: catalog.Plumbing}})

	assert.Equal(t, []string{xlsx.SummarySheet, xlsx.LotsSheet, xlsx.ScheduleSheet, xlsx.WarningsSheet}, f.GetSheetList())

	project, err := f.GetCellValue(xlsx.SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "attic", project)

	rows, err := f.GetRows(xlsx.LotsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Lot", "Category", "Min (EUR)", "Max (EUR)", "Basis"}, rows[0])
	assert.Equal(t, "surface", rows[1][4])
}

func TestRender_EmptyEstimation(t *testing.T) {
	f := render(t, nil)

	assert.Equal(t, []string{xlsx.SummarySheet, xlsx.WarningsSheet}, f.GetSheetList())
	notice, err := f.GetCellValue(xlsx.SummarySheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "No estimation is available for this project.", notice)
}
