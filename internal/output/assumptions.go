package output

import (
	"fmt"

	"github.com/investcalc/calculators/internal/domain"
	money "github.com/investcalc/calculators/pkg/decimal"
)

// Assumptions lists the modeling conventions behind a report's figures.
func Assumptions(report *domain.PlanReport) []string {
	notes := []string{
		"SIP contributions are invested at the start of each month and compound monthly",
		"Mutual fund and fixed deposit principals compound once a year",
		"Returns are before tax, fees and inflation",
	}
	if len(report.Results) > 0 && report.Results[0].Result != nil {
		div := report.Results[0].Result.Divisor
		if div.Equal(money.Lakh) {
			notes = append(notes, "Year-wise figures are in lakhs (1L = ₹1,00,000)")
		} else if !div.IsZero() {
			notes = append(notes, fmt.Sprintf("Year-wise figures are in units of %s", FormatCurrency(div)))
		}
	}
	return notes
}
