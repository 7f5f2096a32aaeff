package output

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/investcalc/calculators/internal/domain"
	money "github.com/investcalc/calculators/pkg/decimal"
)

const (
	InvestmentColor = "hsl(270, 70%, 60%)"
	ReturnsColor    = "hsl(150, 70%, 50%)"
	StackID         = "a"
)

// ChartSeries describes one stacked bar series.
type ChartSeries struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	StackID string `json:"stack_id"`
}

// ChartPoint is one x-axis category. Values are plain JSON numbers.
type ChartPoint struct {
	Label      string  `json:"label"`
	Year       int     `json:"year"`
	Investment float64 `json:"investment"`
	Returns    float64 `json:"returns"`
	Total      float64 `json:"total"`
	Tooltip    string  `json:"tooltip"`
}

// ChartConfig is everything a client needs to draw the stacked bar chart.
type ChartConfig struct {
	Title      string        `json:"title"`
	XAxisKey   string        `json:"x_axis_key"`
	YAxisLabel string        `json:"y_axis_label"`
	Series     []ChartSeries `json:"series"`
	Data       []ChartPoint  `json:"data"`
}

// NamedChart pairs a calculation name with its chart.
type NamedChart struct {
	Name  string      `json:"name"`
	Chart ChartConfig `json:"chart"`
}

// AxisLabel titles the value axis for year points scaled by unit,
// e.g. "Amount (Lakhs)".
func AxisLabel(unit decimal.Decimal) string {
	return "Amount (" + money.UnitLabel(unit) + ")"
}

// TooltipText is the hover text for a year point scaled by unit.
func TooltipText(yp domain.YearPoint, unit decimal.Decimal) string {
	return fmt.Sprintf("%s\nInvestment: %s\nReturns: %s\nEstimated Total: %s",
		yp.Label, FormatUnits(yp.Investment, unit), FormatUnits(yp.Returns, unit), FormatUnits(yp.Total(), unit))
}

// BuildChart converts a projection result into a stacked bar chart configuration.
func BuildChart(r *domain.ProjectionResult) ChartConfig {
	cfg := ChartConfig{
		Title:      r.Product.Labels().Title,
		XAxisKey:   "label",
		YAxisLabel: AxisLabel(r.Divisor),
		Series: []ChartSeries{
			{Key: "investment", Label: "Investment", Color: InvestmentColor, StackID: StackID},
			{Key: "returns", Label: "Returns", Color: ReturnsColor, StackID: StackID},
		},
		Data: make([]ChartPoint, 0, len(r.YearSeries)),
	}
	for _, yp := range r.YearSeries {
		cfg.Data = append(cfg.Data, ChartPoint{
			Label:      yp.Label,
			Year:       yp.Year,
			Investment: yp.Investment.InexactFloat64(),
			Returns:    yp.Returns.InexactFloat64(),
			Total:      yp.Total().InexactFloat64(),
			Tooltip:    TooltipText(yp, r.Divisor),
		})
	}
	return cfg
}

// ChartFormatter emits chart configurations for every calculation in a report.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string      { return "chart" }
func (c ChartFormatter) Extension() string { return "json" }

func (c ChartFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	charts := make([]NamedChart, 0, len(report.Results))
	for _, nr := range report.Results {
		if nr.Result == nil {
			continue
		}
		charts = append(charts, NamedChart{Name: nr.Name, Chart: BuildChart(nr.Result)})
	}
	return json.MarshalIndent(charts, "", "  ")
}

// SVG layout of the html report chart.
const (
	svgWidth     = 640
	svgHeight    = 320
	svgPadLeft   = 56
	svgPadRight  = 16
	svgPadTop    = 16
	svgPadBottom = 36
	svgTicks     = 4
)

// SVGBar is one stacked column, investment at the bottom and returns on top.
type SVGBar struct {
	X, Width           float64
	InvestY, InvestH   float64
	ReturnsY, ReturnsH float64
	LabelX             float64
	Label              string
	Tooltip            string
}

// SVGTick is a horizontal grid line with its axis value.
type SVGTick struct {
	Y     float64
	Label string
}

// SVGChart holds the precomputed geometry for the html template.
type SVGChart struct {
	Width, Height   int
	PlotLeft        float64
	PlotRight       float64
	BaseY           float64
	YAxisLabel      string
	InvestmentColor string
	ReturnsColor    string
	Bars            []SVGBar
	Ticks           []SVGTick
}

func buildSVGChart(r *domain.ProjectionResult) SVGChart {
	chart := SVGChart{
		Width:           svgWidth,
		Height:          svgHeight,
		PlotLeft:        svgPadLeft,
		PlotRight:       svgWidth - svgPadRight,
		BaseY:           svgHeight - svgPadBottom,
		YAxisLabel:      AxisLabel(r.Divisor),
		InvestmentColor: InvestmentColor,
		ReturnsColor:    ReturnsColor,
	}
	n := len(r.YearSeries)
	if n == 0 {
		return chart
	}
	maxTotal := decimal.Zero
	for _, yp := range r.YearSeries {
		if t := yp.Total(); t.GreaterThan(maxTotal) {
			maxTotal = t
		}
	}
	top := maxTotal.InexactFloat64()
	if top <= 0 {
		top = 1
	}
	plotH := chart.BaseY - svgPadTop
	scale := plotH / top

	for i := 0; i <= svgTicks; i++ {
		v := top * float64(i) / svgTicks
		chart.Ticks = append(chart.Ticks, SVGTick{
			Y:     round1(chart.BaseY - v*scale),
			Label: decimal.NewFromFloat(v).StringFixed(2),
		})
	}

	slot := (chart.PlotRight - chart.PlotLeft) / float64(n)
	width := slot * 0.7
	for i, yp := range r.YearSeries {
		x := chart.PlotLeft + slot*float64(i) + (slot-width)/2
		invH := nonNegative(yp.Investment.InexactFloat64()) * scale
		retH := nonNegative(yp.Returns.InexactFloat64()) * scale
		chart.Bars = append(chart.Bars, SVGBar{
			X:        round1(x),
			Width:    round1(width),
			InvestY:  round1(chart.BaseY - invH),
			InvestH:  round1(invH),
			ReturnsY: round1(chart.BaseY - invH - retH),
			ReturnsH: round1(retH),
			LabelX:   round1(x + width/2),
			Label:    yp.Label,
			Tooltip:  TooltipText(yp, r.Divisor),
		})
	}
	return chart
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
