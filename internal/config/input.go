package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if len(plan.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	if plan.StartDate != "" {
		if _, err := dateutil.ParseDate(plan.StartDate); err != nil {
			return domain.InvalidInput("start_date", err.Error())
		}
	}

	seen := make(map[string]bool, len(plan.Calculations))
	for i, entry := range plan.Calculations {
		if err := ip.validateEntry(&entry); err != nil {
			return fmt.Errorf("calculation %d validation failed: %w", i, err)
		}
		key := strings.ToLower(strings.TrimSpace(entry.Name))
		if seen[key] {
			return fmt.Errorf("calculation %d: duplicate name %q", i, entry.Name)
		}
		seen[key] = true
	}

	return nil
}

// validateEntry validates a single calculation
func (ip *InputParser) validateEntry(entry *domain.PlanEntry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return domain.InvalidInput("name", "calculation name is required")
	}
	if _, err := domain.ParseProduct(entry.Product); err != nil {
		return err
	}
	if err := domain.ValidateAmounts(entry.Amount, entry.Rate); err != nil {
		return err
	}
	if err := domain.ValidateYears(entry.Years); err != nil {
		return err
	}
	if entry.StartDate != "" {
		if _, err := dateutil.ParseDate(entry.StartDate); err != nil {
			return domain.InvalidInput("start_date", err.Error())
		}
	}
	return nil
}

// CreateExamplePlan returns a plan with one calculation of each product
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	return &domain.Plan{
		Name:      "Example Investment Plan",
		StartDate: "2025-04-01",
		Calculations: []domain.PlanEntry{
			{
				Name:    "Monthly SIP",
				Product: string(domain.ProductSIP),
				Amount:  decimal.NewFromInt(5000),
				Rate:    decimal.NewFromInt(12),
				Years:   10,
			},
			{
				Name:    "Mutual Fund Lump Sum",
				Product: string(domain.ProductMutualFund),
				Amount:  decimal.NewFromInt(200000),
				Rate:    decimal.NewFromInt(11),
				Years:   7,
			},
			{
				Name:    "Fixed Deposit",
				Product: string(domain.ProductFixedDeposit),
				Amount:  decimal.NewFromInt(500000),
				Rate:    decimal.NewFromFloat(6.5),
				Years:   5,
			},
		},
	}
}

// SavePlan writes a plan as YAML
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
