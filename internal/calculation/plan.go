package calculation

import (
	"fmt"
	"strings"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/pkg/dateutil"
)

// EntryInput converts a plan entry to a projection input. planStart is used
// when the entry has no start date of its own.
func EntryInput(entry domain.PlanEntry, planStart string) (domain.ProjectionInput, error) {
	product, err := domain.ParseProduct(entry.Product)
	if err != nil {
		return domain.ProjectionInput{}, err
	}

	input := domain.ProjectionInput{
		Product:           product,
		Amount:            entry.Amount,
		AnnualRatePercent: entry.Rate,
		Years:             entry.Years,
	}

	start := strings.TrimSpace(entry.StartDate)
	if start == "" {
		start = strings.TrimSpace(planStart)
	}
	if start != "" {
		d, err := dateutil.ParseDate(start)
		if err != nil {
			return domain.ProjectionInput{}, domain.InvalidInput("start_date", err.Error())
		}
		input.StartDate = &d
	}
	return input, nil
}

// RunPlan runs every calculation in the plan in order. The first failing
// calculation aborts the run.
func (pe *ProjectionEngine) RunPlan(plan *domain.Plan) (*domain.PlanReport, error) {
	report := &domain.PlanReport{
		Name:        plan.Name,
		GeneratedAt: nowFunc().UTC(),
		Results:     make([]domain.NamedResult, 0, len(plan.Calculations)),
	}

	for _, entry := range plan.Calculations {
		input, err := EntryInput(entry, plan.StartDate)
		if err != nil {
			return nil, fmt.Errorf("calculation %q: %w", entry.Name, err)
		}
		result, err := pe.Run(input)
		if err != nil {
			return nil, fmt.Errorf("calculation %q: %w", entry.Name, err)
		}
		report.Results = append(report.Results, domain.NamedResult{Name: entry.Name, Result: result})
	}

	pe.Logger.Infof("plan %q: %d calculations projected", plan.Name, len(report.Results))
	return report, nil
}
