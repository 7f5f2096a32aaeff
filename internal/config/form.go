package config

import (
	"fmt"
	"strings"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/shopspring/decimal"
)

// FormValues are the raw fields of one calculator form.
type FormValues struct {
	Product string
	Amount  string
	Rate    string
	Years   string
}

// ParseInput turns raw form fields into a validated projection input.
// Non-numeric or negative values are INVALID_INPUT; zero or fractional
// years are INVALID_PERIOD.
func ParseInput(form FormValues) (domain.ProjectionInput, error) {
	product, err := domain.ParseProduct(form.Product)
	if err != nil {
		return domain.ProjectionInput{}, err
	}

	amount, err := parseNumber("amount", form.Amount)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	rate, err := parseNumber("rate", form.Rate)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	years, err := parseYears(form.Years)
	if err != nil {
		return domain.ProjectionInput{}, err
	}

	input := domain.ProjectionInput{
		Product:           product,
		Amount:            amount,
		AnnualRatePercent: rate,
		Years:             years,
	}
	if err := input.Validate(); err != nil {
		return domain.ProjectionInput{}, err
	}
	return input, nil
}

func parseNumber(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, domain.InvalidInput(field, "value is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.InvalidInput(field, "value must be numeric")
	}
	if d.IsNegative() {
		return decimal.Zero, domain.InvalidInput(field, "value cannot be negative")
	}
	return d, nil
}

func parseYears(raw string) (int, error) {
	d, err := parseNumber("years", raw)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, domain.InvalidPeriod("years", "period must be a whole number of years")
	}
	if !d.IsPositive() {
		return 0, domain.InvalidPeriod("years", "period must be at least 1 year")
	}
	if d.GreaterThan(decimal.NewFromInt(domain.MaxPeriodYears)) {
		return 0, domain.InvalidPeriod("years", fmt.Sprintf("period cannot exceed %d years", domain.MaxPeriodYears))
	}
	return int(d.IntPart()), nil
}
