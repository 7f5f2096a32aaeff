package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestComputeSIP_OneYear(t *testing.T) {
	res, err := NewProjectionEngine().ComputeSIP(dec("1000"), dec("12"), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeSIP, res.Mode)
	assertDecimal(t, "12000", res.TotalInvestment)

	// Annuity due at 1% a month: 1000 * ((1.01^12 - 1) / 0.01) * 1.01 = 12809.33
	manual := 1000 * ((1.126825030131970 - 1) / 0.01) * 1.01
	assert.True(t, res.TotalReturns.IsPositive())
	assert.InDelta(t, manual-12000, res.TotalReturns.InexactFloat64(), 1.0)
	assertDecimal(t, "809", res.TotalReturns)
	assertDecimal(t, "12809", res.MaturityValue)

	require.Len(t, res.YearSeries, 1)
	assert.Equal(t, "1Y", res.YearSeries[0].Label)
	assertDecimal(t, "0.12", res.YearSeries[0].Investment)
	assertDecimal(t, "0.01", res.YearSeries[0].Returns)
}

func TestComputeSIP_TenYears(t *testing.T) {
	res, err := NewProjectionEngine().ComputeSIP(dec("5000"), dec("12"), 10)
	require.NoError(t, err)

	assertDecimal(t, "600000", res.TotalInvestment)
	assertDecimal(t, "561695", res.TotalReturns)
	require.Len(t, res.YearSeries, 10)

	wantReturns := []string{"0.04", "0.16", "0.38", "0.69", "1.12", "1.69", "2.40", "3.28", "4.34", "5.62"}
	for i, yp := range res.YearSeries {
		assert.Equal(t, i+1, yp.Year)
		assert.Equal(t, domain.YearLabel(i+1), yp.Label)
		assertDecimal(t, decimal.NewFromFloat(0.6).Mul(decimal.NewFromInt(int64(i+1))).StringFixed(2), yp.Investment)
		assertDecimal(t, wantReturns[i], yp.Returns)
	}
}

func TestComputeSIP_InvestmentIsMonotonic(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := []struct {
		amount string
		rate   string
		years  int
	}{
		{"500", "8", 15},
		{"1234.56", "0", 7},
		{"25000", "18.5", 30},
	}
	for _, in := range inputs {
		res, err := engine.ComputeSIP(dec(in.amount), dec(in.rate), in.years)
		require.NoError(t, err)
		require.Len(t, res.YearSeries, in.years)
		for i := 1; i < len(res.YearSeries); i++ {
			assert.True(t, res.YearSeries[i].Investment.GreaterThanOrEqual(res.YearSeries[i-1].Investment),
				"investment decreased at year %d for %+v", i+1, in)
		}
	}
}

func TestComputeSIP_ZeroRate(t *testing.T) {
	res, err := NewProjectionEngine().ComputeSIP(dec("1000"), decimal.Zero, 2)
	require.NoError(t, err)
	assertDecimal(t, "24000", res.TotalInvestment)
	assert.True(t, res.TotalReturns.IsZero())
	for _, yp := range res.YearSeries {
		assert.True(t, yp.Returns.IsZero())
	}
}

func TestComputeSIP_RoundsFractionalContributions(t *testing.T) {
	res, err := NewProjectionEngine().ComputeSIP(dec("1000.55"), decimal.Zero, 1)
	require.NoError(t, err)
	// 12 * 1000.55 = 12006.6
	assertDecimal(t, "12007", res.TotalInvestment)
}

func TestComputeLumpSum_OneYear(t *testing.T) {
	res, err := NewProjectionEngine().ComputeLumpSum(dec("100000"), dec("10"), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeLumpSum, res.Mode)
	assertDecimal(t, "100000", res.TotalInvestment)
	assertDecimal(t, "10000", res.TotalReturns)
	assertDecimal(t, "110000", res.MaturityValue)
	require.Len(t, res.YearSeries, 1)
	assertDecimal(t, "1.00", res.YearSeries[0].Investment)
	assertDecimal(t, "0.10", res.YearSeries[0].Returns)
}

func TestComputeLumpSum_InvestmentConstant(t *testing.T) {
	res, err := NewProjectionEngine().ComputeLumpSum(dec("500000"), dec("6.5"), 3)
	require.NoError(t, err)
	require.Len(t, res.YearSeries, 3)
	for _, yp := range res.YearSeries {
		assertDecimal(t, "5.00", yp.Investment)
	}
	assertDecimal(t, "0.33", res.YearSeries[0].Returns)
	assertDecimal(t, "0.67", res.YearSeries[1].Returns)
	assertDecimal(t, "1.04", res.YearSeries[2].Returns)
	assertDecimal(t, "103975", res.TotalReturns)
}

func TestComputeLumpSum_PrincipalPassthrough(t *testing.T) {
	res, err := NewProjectionEngine().ComputeLumpSum(dec("100000.75"), dec("5"), 2)
	require.NoError(t, err)
	assertDecimal(t, "100000.75", res.TotalInvestment)
}

func TestComputeLumpSum_LegacyRounding(t *testing.T) {
	exact, err := NewProjectionEngine().ComputeLumpSum(dec("123456"), dec("7"), 5)
	require.NoError(t, err)
	assertDecimal(t, "49697", exact.TotalReturns)

	opts := DefaultOptions()
	opts.LegacyRounding = true
	legacy, err := NewProjectionEngineWithOptions(opts).ComputeLumpSum(dec("123456"), dec("7"), 5)
	require.NoError(t, err)
	// recovered from the last year point, 0.50 lakhs
	assertDecimal(t, "0.50", legacy.YearSeries[4].Returns)
	assertDecimal(t, "50000", legacy.TotalReturns)
	assertDecimal(t, "173456", legacy.MaturityValue)

	assert.Equal(t, exact.YearSeries, legacy.YearSeries)
}

func TestComputeLumpSum_ZeroRate(t *testing.T) {
	res, err := NewProjectionEngine().ComputeLumpSum(dec("100000"), decimal.Zero, 3)
	require.NoError(t, err)
	assert.True(t, res.TotalReturns.IsZero())
	assertDecimal(t, "100000", res.MaturityValue)
}

func TestSeriesLengthMatchesYears(t *testing.T) {
	engine := NewProjectionEngine()
	for _, years := range []int{1, 2, 5, 12, 40} {
		sip, err := engine.ComputeSIP(dec("2000"), dec("10"), years)
		require.NoError(t, err)
		assert.Len(t, sip.YearSeries, years)

		lump, err := engine.ComputeLumpSum(dec("200000"), dec("10"), years)
		require.NoError(t, err)
		assert.Len(t, lump.YearSeries, years)
	}
}

func TestComputations_AreIdempotent(t *testing.T) {
	engine := NewProjectionEngine()

	a, err := engine.ComputeSIP(dec("7500"), dec("11.3"), 20)
	require.NoError(t, err)
	b, err := engine.ComputeSIP(dec("7500"), dec("11.3"), 20)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := engine.ComputeLumpSum(dec("350000"), dec("7.1"), 9)
	require.NoError(t, err)
	d, err := engine.ComputeLumpSum(dec("350000"), dec("7.1"), 9)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestValidationErrors(t *testing.T) {
	engine := NewProjectionEngine()
	tests := []struct {
		name   string
		run    func() error
		target error
	}{
		{"sip zero years", func() error { _, err := engine.ComputeSIP(dec("1000"), dec("12"), 0); return err }, domain.ErrInvalidPeriod},
		{"sip negative years", func() error { _, err := engine.ComputeSIP(dec("1000"), dec("12"), -1); return err }, domain.ErrInvalidInput},
		{"lump sum zero years", func() error { _, err := engine.ComputeLumpSum(dec("100000"), dec("10"), 0); return err }, domain.ErrInvalidPeriod},
		{"over max years", func() error { _, err := engine.ComputeLumpSum(dec("100000"), dec("10"), DefaultMaxYears+1); return err }, domain.ErrInvalidPeriod},
		{"negative amount", func() error { _, err := engine.ComputeSIP(dec("-1000"), dec("12"), 5); return err }, domain.ErrInvalidInput},
		{"zero principal", func() error { _, err := engine.ComputeLumpSum(decimal.Zero, dec("12"), 5); return err }, domain.ErrInvalidInput},
		{"negative rate", func() error { _, err := engine.ComputeLumpSum(dec("1000"), dec("-1"), 5); return err }, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestMaxYearsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxYears = 0
	res, err := NewProjectionEngineWithOptions(opts).ComputeLumpSum(dec("1000"), dec("1"), DefaultMaxYears+5)
	require.NoError(t, err)
	assert.Len(t, res.YearSeries, DefaultMaxYears+5)

	// the hard ceiling still applies with the cap off
	_, err = NewProjectionEngineWithOptions(opts).ComputeSIP(dec("1000"), dec("12"), domain.MaxPeriodYears+1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriod), "got %v", err)

	_, err = NewProjectionEngineWithOptions(Options{MaxYears: -3}).ComputeLumpSum(dec("1000"), dec("1"), 1<<30)
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriod), "got %v", err)
}

func TestCustomDivisor(t *testing.T) {
	opts := DefaultOptions()
	opts.Divisor = decimal.NewFromInt(1000)
	res, err := NewProjectionEngineWithOptions(opts).ComputeLumpSum(dec("100000"), dec("10"), 1)
	require.NoError(t, err)
	assertDecimal(t, "100.00", res.YearSeries[0].Investment)
	assertDecimal(t, "10.00", res.YearSeries[0].Returns)
	assertDecimal(t, "1000", res.Divisor)

	// non-positive divisor falls back to lakhs
	fallback := NewProjectionEngineWithOptions(Options{Divisor: decimal.Zero})
	assertDecimal(t, "100000", fallback.Options().Divisor)
}

func TestRun_DispatchesByProduct(t *testing.T) {
	engine := NewProjectionEngine()

	sip, err := engine.Run(domain.ProjectionInput{Product: domain.ProductSIP, Amount: dec("1000"), AnnualRatePercent: dec("12"), Years: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductSIP, sip.Product)
	assert.Equal(t, domain.ModeSIP, sip.Mode)

	mf, err := engine.Run(domain.ProjectionInput{Product: domain.ProductMutualFund, Amount: dec("100000"), AnnualRatePercent: dec("10"), Years: 4})
	require.NoError(t, err)
	fd, err := engine.Run(domain.ProjectionInput{Product: domain.ProductFixedDeposit, Amount: dec("100000"), AnnualRatePercent: dec("10"), Years: 4})
	require.NoError(t, err)

	assert.Equal(t, domain.ProductMutualFund, mf.Product)
	assert.Equal(t, domain.ProductFixedDeposit, fd.Product)
	assert.Equal(t, mf.YearSeries, fd.YearSeries)
	assert.True(t, mf.TotalReturns.Equal(fd.TotalReturns))

	_, err = engine.Run(domain.ProjectionInput{Product: "bond", Amount: dec("1"), AnnualRatePercent: dec("1"), Years: 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRun_AnchorsDates(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	res, err := NewProjectionEngine().Run(domain.ProjectionInput{
		Product: domain.ProductFixedDeposit, Amount: dec("100000"), AnnualRatePercent: dec("7"), Years: 3, StartDate: &start,
	})
	require.NoError(t, err)

	require.NotNil(t, res.MaturityDate)
	assert.Equal(t, time.Date(2028, 4, 1, 0, 0, 0, 0, time.UTC), *res.MaturityDate)
	for i, yp := range res.YearSeries {
		require.NotNil(t, yp.Date)
		assert.Equal(t, 2026+i, yp.Date.Year())
	}
	assert.Equal(t, &start, res.Input.StartDate)
}

func TestPackageLevelHelpers(t *testing.T) {
	sip, err := ComputeSIP(dec("1000"), dec("12"), 1)
	require.NoError(t, err)
	assertDecimal(t, "809", sip.TotalReturns)

	lump, err := ComputeLumpSum(dec("100000"), dec("10"), 1)
	require.NoError(t, err)
	assertDecimal(t, "10000", lump.TotalReturns)
}

type recordingLogger struct {
	NopLogger
	debug int
}

func (r *recordingLogger) Debugf(string, ...any) { r.debug++ }

func TestSetLogger(t *testing.T) {
	engine := NewProjectionEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)
	_, err := engine.ComputeSIP(dec("1000"), dec("12"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.debug)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
