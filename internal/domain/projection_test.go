package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProduct(t *testing.T) {
	tests := []struct {
		in   string
		want Product
	}{
		{"sip", ProductSIP},
		{"SIP", ProductSIP},
		{"mf", ProductMutualFund},
		{" Mutual-Fund ", ProductMutualFund},
		{"fd", ProductFixedDeposit},
		{"fixed_deposit", ProductFixedDeposit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProduct(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseProduct("bond")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestProductModeAndLabels(t *testing.T) {
	assert.Equal(t, ModeSIP, ProductSIP.Mode())
	assert.Equal(t, ModeLumpSum, ProductMutualFund.Mode())
	assert.Equal(t, ModeLumpSum, ProductFixedDeposit.Mode())

	assert.Equal(t, "Monthly Investment", ProductSIP.Labels().Amount)
	assert.Equal(t, "Principal Amount", ProductFixedDeposit.Labels().Amount)
	assert.Equal(t, "Mutual Fund", ProductMutualFund.String())
	assert.Len(t, Products(), 3)
	assert.False(t, Product("bond").Valid())
}

func TestProjectionInputValidate(t *testing.T) {
	valid := ProjectionInput{Product: ProductSIP, Amount: decimal.NewFromInt(1000), AnnualRatePercent: decimal.NewFromInt(12), Years: 10}
	require.NoError(t, valid.Validate())

	zeroRate := valid
	zeroRate.AnnualRatePercent = decimal.Zero
	assert.NoError(t, zeroRate.Validate())

	atCeiling := valid
	atCeiling.Years = MaxPeriodYears
	assert.NoError(t, atCeiling.Validate())

	tests := []struct {
		name   string
		mutate func(*ProjectionInput)
		code   ErrorCode
		target error
	}{
		{"unknown product", func(in *ProjectionInput) { in.Product = "bond" }, CodeInvalidInput, ErrInvalidInput},
		{"zero amount", func(in *ProjectionInput) { in.Amount = decimal.Zero }, CodeInvalidInput, ErrInvalidInput},
		{"negative amount", func(in *ProjectionInput) { in.Amount = decimal.NewFromInt(-5) }, CodeInvalidInput, ErrInvalidInput},
		{"negative rate", func(in *ProjectionInput) { in.AnnualRatePercent = decimal.NewFromFloat(-0.5) }, CodeInvalidInput, ErrInvalidInput},
		{"zero years", func(in *ProjectionInput) { in.Years = 0 }, CodeInvalidPeriod, ErrInvalidPeriod},
		{"negative years", func(in *ProjectionInput) { in.Years = -3 }, CodeInvalidInput, ErrInvalidInput},
		{"beyond ceiling", func(in *ProjectionInput) { in.Years = MaxPeriodYears + 1 }, CodeInvalidPeriod, ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, ve.Code)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := InvalidPeriod("years", "period must be at least 1 year, got 0")
	assert.Equal(t, "INVALID_PERIOD: years: period must be at least 1 year, got 0", err.Error())
	assert.False(t, errors.Is(err, ErrInvalidInput))

	bare := &ValidationError{Code: CodeInvalidInput, Message: "bad"}
	assert.Equal(t, "INVALID_INPUT: bad", bare.Error())
}

func TestYearPoint(t *testing.T) {
	yp := YearPoint{Year: 3, Label: YearLabel(3), Investment: decimal.NewFromFloat(0.36), Returns: decimal.NewFromFloat(0.07)}
	assert.Equal(t, "3Y", yp.Label)
	assert.True(t, yp.Total().Equal(decimal.NewFromFloat(0.43)))

	r := &ProjectionResult{}
	_, ok := r.FinalYear()
	assert.False(t, ok)
	r.YearSeries = []YearPoint{yp}
	last, ok := r.FinalYear()
	assert.True(t, ok)
	assert.Equal(t, 3, last.Year)
}
