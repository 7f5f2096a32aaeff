package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Lakh is the default display unit for year-wise series (1 lakh = 1,00,000).
	Lakh = decimal.NewFromInt(100000)
	// Crore is 100 lakhs.
	Crore = decimal.NewFromInt(10000000)
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

var one = decimal.NewFromInt(1)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// RoundWhole rounds to whole currency units, half away from zero.
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// InUnits expresses the amount in multiples of unit, rounded to two places.
// A zero unit leaves the amount unscaled.
func (m Money) InUnits(unit decimal.Decimal) decimal.Decimal {
	if unit.IsZero() {
		return m.Decimal.Round(2)
	}
	return m.Decimal.Div(unit).Round(2)
}

// FormatWhole renders the amount rounded to whole rupees, e.g. ₹1,23,457.
func (m Money) FormatWhole() string {
	return withSign(m.Decimal, GroupIndian(m.Decimal.Abs().StringFixed(0)))
}

// FormatUnits renders a figure already expressed in multiples of unit:
// ₹1.25L for lakhs, ₹1.25Cr for crores, ₹1,250.00 for plain rupees and
// 1.25 × ₹1,000 for any other unit.
func FormatUnits(value, unit decimal.Decimal) string {
	body := value.Abs().StringFixed(2)
	switch {
	case unit.Equal(Lakh):
		return withSign(value, body+"L")
	case unit.Equal(Crore):
		return withSign(value, body+"Cr")
	case unit.IsZero() || unit.Equal(one):
		return withSign(value, GroupIndian(body))
	}
	s := GroupIndian(body) + " × " + unitAmount(unit)
	if value.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}

// UnitLabel names a display unit for axis titles: Lakhs, Crores, ₹ or × ₹1,000.
func UnitLabel(unit decimal.Decimal) string {
	switch {
	case unit.Equal(Lakh):
		return "Lakhs"
	case unit.Equal(Crore):
		return "Crores"
	case unit.IsZero() || unit.Equal(one):
		return CurrencySymbol
	}
	return "× " + unitAmount(unit)
}

func unitAmount(unit decimal.Decimal) string {
	return CurrencySymbol + GroupIndian(unit.Abs().String())
}

func withSign(d decimal.Decimal, body string) string {
	if d.Round(2).IsNegative() {
		return "-" + CurrencySymbol + body
	}
	return CurrencySymbol + body
}

// GroupIndian inserts separators into a non-negative number string using the
// Indian system: the last three integer digits, then groups of two.
func GroupIndian(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}
	if hasFrac {
		return intPart + "." + fracPart
	}
	return intPart
}
