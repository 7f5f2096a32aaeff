package output

import (
	"sort"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlight identifies the calculation with the best return on investment.
type Highlight struct {
	Name             string
	Product          domain.Product
	MaturityValue    decimal.Decimal
	TotalReturns     decimal.Decimal
	ReturnPercentage decimal.Decimal
}

// ReturnPercentage is total returns as a percentage of total investment.
func ReturnPercentage(r *domain.ProjectionResult) decimal.Decimal {
	if r.TotalInvestment.IsZero() {
		return decimal.Zero
	}
	return r.TotalReturns.Div(r.TotalInvestment).Mul(decimal.NewFromInt(100)).Round(2)
}

// AnalyzeReport picks the calculation with the highest return percentage.
// Ties keep plan order.
func AnalyzeReport(report *domain.PlanReport) Highlight {
	type ranked struct {
		idx int
		pct decimal.Decimal
	}
	var ranks []ranked
	for i, nr := range report.Results {
		if nr.Result == nil {
			continue
		}
		ranks = append(ranks, ranked{i, ReturnPercentage(nr.Result)})
	}
	if len(ranks) == 0 {
		return Highlight{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].pct.GreaterThan(ranks[j].pct) })
	best := report.Results[ranks[0].idx]
	return Highlight{
		Name:             best.Name,
		Product:          best.Result.Product,
		MaturityValue:    best.Result.MaturityValue,
		TotalReturns:     best.Result.TotalReturns,
		ReturnPercentage: ranks[0].pct,
	}
}
