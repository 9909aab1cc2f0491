package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/time-atlas/pkg/adapters"
	"github.com/de-tools/time-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	HoursWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  44,
		HoursWidth: 12,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// HandleJSON encodes the report as indented JSON at the api boundary.
func (r *Reporter) HandleJSON(report *domain.Report) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(adapters.MapReportDomainToApi(report))
}

// Handle renders the report as a plain-text summary table.
func (r *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, spent, planned float64) string {
			return fmt.Sprintf("| %-*s | %*.2f | %*.2f |",
				r.config.NameWidth, name,
				r.config.HoursWidth, spent,
				r.config.HoursWidth, planned)
		},
		"formatHeader": func() string {
			return fmt.Sprintf("| %-*s | %*s | %*s |",
				r.config.NameWidth, "Project",
				r.config.HoursWidth, "Spent",
				r.config.HoursWidth, "Planned")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.NameWidth+2),
				strings.Repeat("-", r.config.HoursWidth+2),
				strings.Repeat("-", r.config.HoursWidth+2))
		},
		"percent": func(v float64) string {
			if math.IsNaN(v) {
				return "no data"
			}
			return fmt.Sprintf("%.1f%%", v)
		},
		"date": func(v interface{ Format(string) string }) string {
			return v.Format(domain.DateFormat)
		},
	}

	tmpl := `
Hours Report {{date .Period.Start}} to {{date .Period.End}} ({{.Interval}})

Total Spent: {{printf "%.2f" .TotalSpent}}h  Planned: {{printf "%.2f" .TotalPlanned}}h
Billable: {{percent .BillablePercent}}  Business Days: {{.BusinessDays}}

{{separator}}
{{formatHeader}}
{{separator}}
{{range .Projects}}{{formatRow .Name .HoursSpent .HoursPlanned}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}
