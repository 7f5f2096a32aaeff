package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionInput is one validated calculator submission.
type ProjectionInput struct {
	Product Product `json:"product" yaml:"product"`
	// Amount is the monthly contribution for SIP and the principal otherwise.
	Amount            decimal.Decimal `json:"amount" yaml:"amount"`
	AnnualRatePercent decimal.Decimal `json:"rate" yaml:"rate"`
	Years             int             `json:"years" yaml:"years"`
	// StartDate anchors year points to calendar dates when set.
	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
}

// Mode returns the compounding scheme for the input's product.
func (in ProjectionInput) Mode() Mode { return in.Product.Mode() }

// Validate checks the product, amount, rate and period.
func (in ProjectionInput) Validate() error {
	if !in.Product.Valid() {
		return InvalidInput("product", fmt.Sprintf("unknown product %q", string(in.Product)))
	}
	if err := ValidateAmounts(in.Amount, in.AnnualRatePercent); err != nil {
		return err
	}
	return ValidateYears(in.Years)
}

// ValidateAmounts rejects a non-positive amount or a negative rate.
func ValidateAmounts(amount, annualRatePercent decimal.Decimal) error {
	if !amount.IsPositive() {
		return InvalidInput("amount", "amount must be positive")
	}
	if annualRatePercent.IsNegative() {
		return InvalidInput("rate", "annual rate cannot be negative")
	}
	return nil
}

// MaxPeriodYears is the longest period any projection accepts, whatever the
// configured cap.
const MaxPeriodYears = 1000

// ValidateYears rejects a negative period as bad input, and an empty one or
// one longer than MaxPeriodYears as an invalid period.
func ValidateYears(years int) error {
	if years < 0 {
		return InvalidInput("years", fmt.Sprintf("period cannot be negative, got %d", years))
	}
	if years == 0 {
		return InvalidPeriod("years", fmt.Sprintf("period must be at least 1 year, got %d", years))
	}
	if years > MaxPeriodYears {
		return InvalidPeriod("years", fmt.Sprintf("period cannot exceed %d years, got %d", MaxPeriodYears, years))
	}
	return nil
}

// YearPoint is the cumulative position at the end of one completed year,
// expressed in display units (lakhs by default) with two decimals.
type YearPoint struct {
	Year       int             `json:"year"`
	Label      string          `json:"label"`
	Investment decimal.Decimal `json:"investment"`
	// Returns is the cumulative gain above the amount invested.
	Returns decimal.Decimal `json:"returns"`
	Date    *time.Time      `json:"date,omitempty"`
}

// Total is the estimated value at the year point (investment plus returns).
func (yp YearPoint) Total() decimal.Decimal {
	return yp.Investment.Add(yp.Returns)
}

// YearLabel formats the chart label for a completed year, e.g. "3Y".
func YearLabel(year int) string {
	return fmt.Sprintf("%dY", year)
}

// ProjectionResult holds the outcome of one calculation.
type ProjectionResult struct {
	Product         Product         `json:"product,omitempty"`
	Mode            Mode            `json:"mode"`
	Input           ProjectionInput `json:"input"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalReturns    decimal.Decimal `json:"total_returns"`
	MaturityValue   decimal.Decimal `json:"maturity_value"`
	YearSeries      []YearPoint     `json:"year_series"`
	MaturityDate    *time.Time      `json:"maturity_date,omitempty"`
	// Divisor is the unit YearSeries figures are expressed in.
	Divisor decimal.Decimal `json:"divisor"`
}

// FinalYear returns the last year point, if any.
func (r *ProjectionResult) FinalYear() (YearPoint, bool) {
	if len(r.YearSeries) == 0 {
		return YearPoint{}, false
	}
	return r.YearSeries[len(r.YearSeries)-1], true
}
