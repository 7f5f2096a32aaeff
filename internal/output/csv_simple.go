package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/investcalc/calculators/internal/domain"
)

// CSVSummarizer writes one row per calculation with its totals.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "summary-csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Calculation", "Product", "Mode", "Amount", "Rate", "Years", "TotalInvestment", "TotalReturns", "MaturityValue", "ReturnPercentage", "MaturityDate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, nr := range report.Results {
		r := nr.Result
		if r == nil {
			continue
		}
		maturity := ""
		if r.MaturityDate != nil {
			maturity = FormatDate(r.MaturityDate)
		}
		row := []string{
			nr.Name,
			string(r.Product),
			string(r.Mode),
			r.Input.Amount.StringFixed(2),
			r.Input.AnnualRatePercent.String(),
			strconv.Itoa(r.Input.Years),
			r.TotalInvestment.StringFixed(0),
			r.TotalReturns.StringFixed(0),
			r.MaturityValue.StringFixed(0),
			ReturnPercentage(r).StringFixed(2),
			maturity,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
