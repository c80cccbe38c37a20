package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/renovplan/renovation-planner/internal/service/report/types"
)

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.0f €", v) },
		"days":  func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"pct":   func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
	}
	return &Renderer{tmpl: template.Must(template.New("report").Funcs(funcs).Parse(reportTemplate))}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Renovation estimation{{ if .ProjectName }} - {{ .ProjectName }}{{ end }}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; margin: 40px; color: #1f2933; }
h1 { border-bottom: 3px solid #2563eb; padding-bottom: 8px; }
table { border-collapse: collapse; margin: 16px 0 32px; min-width: 480px; }
th, td { border: 1px solid #d2d6dc; padding: 6px 12px; text-align: left; }
th { background: #f3f4f6; }
td.num { text-align: right; }
.notice { background: #fff7ed; border-left: 4px solid #f97316; padding: 12px; }
.status-over { color: #b91c1c; } .status-under { color: #047857; } .status-within { color: #1d4ed8; }
</style>
</head>
<body>
<h1>Renovation project estimation</h1>
{{ if .ProjectName }}<p><strong>Project:</strong> {{ .ProjectName }}</p>{{ end }}
<p>Generated {{ .Timestamps.Generated }} at {{ .Timestamps.GeneratedTime }}</p>
{{ if .Empty }}
<div class="notice">
<p>No estimation is available for this project.</p>
{{ range .Estimation.Warnings }}<p>{{ . }}</p>{{ end }}
</div>
{{ else }}
{{ with .Estimation }}
<h2>Budget</h2>
<table>
<tr><th>Item</th><th>Min</th><th>Max</th></tr>
<tr><td>Works subtotal</td><td class="num">{{ money .Budget.Subtotal.Min }}</td><td class="num">{{ money .Budget.Subtotal.Max }}</td></tr>
<tr><td>Contingency ({{ pct .Budget.ContingencyRate.Min }} - {{ pct .Budget.ContingencyRate.Max }})</td><td class="num">{{ money .Budget.Contingency.Min }}</td><td class="num">{{ money .Budget.Contingency.Max }}</td></tr>
<tr><td>Fees</td><td class="num">{{ money .Budget.Fees.Total.Min }}</td><td class="num">{{ money .Budget.Fees.Total.Max }}</td></tr>
<tr><th>Total</th><th class="num">{{ money .Budget.Total.Min }}</th><th class="num">{{ money .Budget.Total.Max }}</th></tr>
</table>
<h2>Budget by lot</h2>
<table>
<tr><th>Lot</th><th>Category</th><th>Min</th><th>Max</th><th>Basis</th></tr>
{{ range .Budget.ByLot }}<tr><td>{{ .LotName }}</td><td>{{ .Category.DisplayName }}</td><td class="num">{{ money .Estimate.Min }}</td><td class="num">{{ money .Estimate.Max }}</td><td>{{ .Basis }}</td></tr>
{{ end }}</table>
<h2>Schedule</h2>
<p>{{ days .Duration.TotalDays.Min }} to {{ days .Duration.TotalDays.Max }} working days ({{ days .Duration.TotalWeeks.Min }} to {{ days .Duration.TotalWeeks.Max }} weeks).</p>
<table>
<tr><th>Phase</th><th>Lots</th><th>Min days</th><th>Max days</th></tr>
{{ range .Duration.Phases }}<tr><td>{{ .Name }}</td><td class="num">{{ len .Lots }}</td><td class="num">{{ days .DurationDays.Min }}</td><td class="num">{{ days .DurationDays.Max }}</td></tr>
{{ end }}</table>
{{ if .Factors }}<h2>Adjustment factors</h2>
<table>
<tr><th>Factor</th><th>Impact</th><th>%</th><th>Description</th></tr>
{{ range .Factors }}<tr><td>{{ .Name }}</td><td>{{ .Impact }}</td><td class="num">{{ .Percentage }}</td><td>{{ .Description }}</td></tr>
{{ end }}</table>{{ end }}
<p><strong>Confidence:</strong> {{ .Confidence }}/100</p>
{{ end }}
{{ with .Comparison }}<h2>Budget envelope</h2>
<p class="status-{{ .Status }}"><strong>{{ .Status }}</strong> ({{ .Variance }}%): {{ .Recommendation }}</p>{{ end }}
{{ if and .Options.IncludeWarnings .Estimation.Warnings }}<h2>Warnings</h2>
<ul>{{ range .Estimation.Warnings }}<li>{{ . }}</li>{{ end }}</ul>{{ end }}
{{ end }}
</body>
</html>
`
