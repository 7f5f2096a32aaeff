package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/investcalc/calculators/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart per calculation.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"date": FormatDate,
	"css":  func(s string) template.CSS { return template.CSS(s) },
}).Parse(htmlTemplateSource))

type htmlCalculation struct {
	Name   string
	Labels domain.Labels
	Result *domain.ProjectionResult
	Chart  SVGChart
}

func (h HTMLFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var calcs []htmlCalculation
	for _, nr := range report.Results {
		if nr.Result == nil {
			continue
		}
		calcs = append(calcs, htmlCalculation{
			Name:   nr.Name,
			Labels: nr.Result.Product.Labels(),
			Result: nr.Result,
			Chart:  buildSVGChart(nr.Result),
		})
	}
	data := struct {
		Report       *domain.PlanReport
		Calculations []htmlCalculation
		Highlight    Highlight
		Assumptions  []string
	}{report, calcs, AnalyzeReport(report), Assumptions(report)}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
