package calculation

import (
	"fmt"
	"time"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/pkg/dateutil"
	money "github.com/investcalc/calculators/pkg/decimal"
	"github.com/shopspring/decimal"
)

// internalPrecision bounds the scale of running balances so repeated
// compounding does not grow the underlying big.Int without limit.
const internalPrecision = 18

// DefaultMaxYears caps the projection period.
const DefaultMaxYears = 100

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Options controls display scaling and compatibility behaviour of the engine.
type Options struct {
	// Divisor scales year points; 100000 expresses them in lakhs.
	Divisor decimal.Decimal
	// LegacyRounding recovers lump-sum total returns from the last rounded
	// year point instead of the unrounded final value.
	LegacyRounding bool
	// MaxYears rejects longer periods; zero leaves only domain.MaxPeriodYears.
	MaxYears int
}

// DefaultOptions returns lakh scaling, exact totals and a 100 year cap.
func DefaultOptions() Options {
	return Options{
		Divisor:  money.Lakh,
		MaxYears: DefaultMaxYears,
	}
}

// ProjectionEngine computes SIP and lump-sum projections. It holds only
// immutable options, so a single engine may be shared between goroutines.
type ProjectionEngine struct {
	opts   Options
	Logger Logger
}

// NewProjectionEngine creates an engine with DefaultOptions.
func NewProjectionEngine() *ProjectionEngine {
	return NewProjectionEngineWithOptions(DefaultOptions())
}

// NewProjectionEngineWithOptions creates an engine with the given options.
// A zero or negative divisor falls back to lakhs.
func NewProjectionEngineWithOptions(opts Options) *ProjectionEngine {
	if !opts.Divisor.IsPositive() {
		opts.Divisor = DefaultOptions().Divisor
	}
	if opts.MaxYears < 0 {
		opts.MaxYears = 0
	}
	return &ProjectionEngine{opts: opts, Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// ComputeSIP runs a SIP projection with DefaultOptions.
func ComputeSIP(monthlyAmount, annualRatePercent decimal.Decimal, years int) (*domain.ProjectionResult, error) {
	return NewProjectionEngine().ComputeSIP(monthlyAmount, annualRatePercent, years)
}

// ComputeLumpSum runs a lump-sum projection with DefaultOptions.
func ComputeLumpSum(principal, annualRatePercent decimal.Decimal, years int) (*domain.ProjectionResult, error) {
	return NewProjectionEngine().ComputeLumpSum(principal, annualRatePercent, years)
}

// Options returns the engine's configuration.
func (pe *ProjectionEngine) Options() Options { return pe.opts }

// Run validates the input and dispatches to the calculator for its product.
func (pe *ProjectionEngine) Run(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result *domain.ProjectionResult
		err    error
	)
	switch input.Mode() {
	case domain.ModeSIP:
		result, err = pe.ComputeSIP(input.Amount, input.AnnualRatePercent, input.Years)
	default:
		result, err = pe.ComputeLumpSum(input.Amount, input.AnnualRatePercent, input.Years)
	}
	if err != nil {
		return nil, err
	}

	result.Product = input.Product
	result.Input = input
	if input.StartDate != nil {
		anchorDates(result, *input.StartDate)
	}
	return result, nil
}

// ComputeSIP projects a monthly contribution compounded monthly. Each month the
// contribution is added first and the balance then grows by one month's rate.
func (pe *ProjectionEngine) ComputeSIP(monthlyAmount, annualRatePercent decimal.Decimal, years int) (*domain.ProjectionResult, error) {
	if err := pe.validate(monthlyAmount, annualRatePercent, years); err != nil {
		return nil, err
	}

	growth := decimal.NewFromInt(1).Add(annualRatePercent.Div(hundred).Div(twelve))
	months := years * 12

	totalInvested := decimal.Zero
	futureValue := decimal.Zero
	series := make([]domain.YearPoint, 0, years)

	for i := 1; i <= months; i++ {
		totalInvested = totalInvested.Add(monthlyAmount)
		futureValue = futureValue.Add(monthlyAmount).Mul(growth).Round(internalPrecision)

		if i%12 == 0 {
			year := i / 12
			series = append(series, domain.YearPoint{
				Year:       year,
				Label:      domain.YearLabel(year),
				Investment: pe.scale(totalInvested),
				Returns:    pe.scale(futureValue.Sub(totalInvested)),
			})
		}
	}

	result := &domain.ProjectionResult{
		Mode: domain.ModeSIP,
		Input: domain.ProjectionInput{
			Product:           domain.ProductSIP,
			Amount:            monthlyAmount,
			AnnualRatePercent: annualRatePercent,
			Years:             years,
		},
		TotalInvestment: roundWhole(totalInvested),
		TotalReturns:    roundWhole(futureValue.Sub(totalInvested)),
		YearSeries:      series,
		Divisor:         pe.opts.Divisor,
	}
	result.MaturityValue = result.TotalInvestment.Add(result.TotalReturns)

	pe.Logger.Debugf("sip projection: amount=%s rate=%s years=%d invested=%s returns=%s",
		monthlyAmount, annualRatePercent, years, result.TotalInvestment, result.TotalReturns)
	return result, nil
}

// ComputeLumpSum projects a single principal compounded annually. Mutual fund
// and fixed deposit calculations share it.
func (pe *ProjectionEngine) ComputeLumpSum(principal, annualRatePercent decimal.Decimal, years int) (*domain.ProjectionResult, error) {
	if err := pe.validate(principal, annualRatePercent, years); err != nil {
		return nil, err
	}

	growth := decimal.NewFromInt(1).Add(annualRatePercent.Div(hundred))
	investment := pe.scale(principal)

	factor := decimal.NewFromInt(1)
	value := principal
	series := make([]domain.YearPoint, 0, years)

	for i := 1; i <= years; i++ {
		factor = factor.Mul(growth).Round(internalPrecision)
		value = principal.Mul(factor)
		series = append(series, domain.YearPoint{
			Year:       i,
			Label:      domain.YearLabel(i),
			Investment: investment,
			Returns:    pe.scale(value.Sub(principal)),
		})
	}

	totalReturns := roundWhole(value.Sub(principal))
	if pe.opts.LegacyRounding {
		totalReturns = roundWhole(series[years-1].Returns.Mul(pe.opts.Divisor))
	}

	result := &domain.ProjectionResult{
		Mode: domain.ModeLumpSum,
		Input: domain.ProjectionInput{
			Amount:            principal,
			AnnualRatePercent: annualRatePercent,
			Years:             years,
		},
		TotalInvestment: principal,
		TotalReturns:    totalReturns,
		MaturityValue:   principal.Add(totalReturns),
		YearSeries:      series,
		Divisor:         pe.opts.Divisor,
	}

	pe.Logger.Debugf("lump sum projection: principal=%s rate=%s years=%d value=%s returns=%s legacy=%t",
		principal, annualRatePercent, years, value.StringFixed(2), totalReturns, pe.opts.LegacyRounding)
	return result, nil
}

func (pe *ProjectionEngine) validate(amount, annualRatePercent decimal.Decimal, years int) error {
	if err := domain.ValidateAmounts(amount, annualRatePercent); err != nil {
		return err
	}
	if err := domain.ValidateYears(years); err != nil {
		return err
	}
	if pe.opts.MaxYears > 0 && years > pe.opts.MaxYears {
		return domain.InvalidPeriod("years", fmt.Sprintf("period cannot exceed %d years, got %d", pe.opts.MaxYears, years))
	}
	return nil
}

// scale converts a currency amount to display units with two decimals.
func (pe *ProjectionEngine) scale(amount decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(amount).InUnits(pe.opts.Divisor)
}

func roundWhole(amount decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(amount).RoundWhole().Decimal
}

func anchorDates(result *domain.ProjectionResult, start time.Time) {
	dates := dateutil.YearCompletionDates(start, len(result.YearSeries))
	for i := range result.YearSeries {
		d := dates[i]
		result.YearSeries[i].Date = &d
	}
	if n := len(dates); n > 0 {
		maturity := dates[n-1]
		result.MaturityDate = &maturity
	}
}
