package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/investcalc/calculators/internal/domain"
)

// ConsoleFormatter renders result cards and a year-wise table per calculation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	title := "INVESTMENT PROJECTION"
	if report.Name != "" {
		title += ": " + report.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len([]rune(title))))

	for _, nr := range report.Results {
		if nr.Result == nil {
			continue
		}
		r := nr.Result
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (%s)\n", nr.Name, r.Product)
		fmt.Fprintf(&buf, "  %s: %s  Rate: %s  Years: %d\n",
			r.Product.Labels().Amount, FormatCurrency(r.Input.Amount), FormatPercentage(r.Input.AnnualRatePercent), r.Input.Years)
		fmt.Fprintf(&buf, "  Total Investment: %s\n", FormatCurrency(r.TotalInvestment))
		fmt.Fprintf(&buf, "  Total Returns:    %s\n", FormatCurrency(r.TotalReturns))
		fmt.Fprintf(&buf, "  Maturity Value:   %s\n", FormatCurrency(r.MaturityValue))
		if r.MaturityDate != nil {
			fmt.Fprintf(&buf, "  Maturity Date:    %s\n", FormatDate(r.MaturityDate))
		}
		fmt.Fprintln(&buf)

		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Year\tInvestment\tReturns\tEstimated Total\t")
		for _, yp := range r.YearSeries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", yp.Label, FormatUnits(yp.Investment, r.Divisor), FormatUnits(yp.Returns, r.Divisor), FormatUnits(yp.Total(), r.Divisor))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	if len(report.Results) > 1 {
		h := AnalyzeReport(report)
		if h.Name != "" {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Best return: %s (%s on investment)\n", h.Name, FormatPercentage(h.ReturnPercentage))
		}
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range Assumptions(report) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}
