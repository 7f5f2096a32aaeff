package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/investcalc/calculators/internal/domain"
)

// CSVYearExporter writes one row per year point of every calculation.
// Figures are in the result's display unit (lakhs by default).
type CSVYearExporter struct{}

func (c CSVYearExporter) Name() string      { return "csv" }
func (c CSVYearExporter) Extension() string { return "csv" }

func (c CSVYearExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Calculation", "Product", "Year", "Label", "Investment", "Returns", "Total", "Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, nr := range report.Results {
		if nr.Result == nil {
			continue
		}
		for _, yp := range nr.Result.YearSeries {
			date := ""
			if yp.Date != nil {
				date = FormatDate(yp.Date)
			}
			row := []string{
				nr.Name,
				string(nr.Result.Product),
				strconv.Itoa(yp.Year),
				yp.Label,
				yp.Investment.StringFixed(2),
				yp.Returns.StringFixed(2),
				yp.Total().StringFixed(2),
				date,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
