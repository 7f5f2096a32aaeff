package output

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/investcalc/calculators/pkg/dateutil"
	money "github.com/investcalc/calculators/pkg/decimal"
)

// FormatCurrency formats a whole-rupee amount with Indian digit grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatUnits formats a year point figure scaled by unit, e.g. ₹1.25L for lakhs.
func FormatUnits(value, unit decimal.Decimal) string { return money.FormatUnits(value, unit) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDate renders an optional date, or "-".
func FormatDate(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return d.Format(dateutil.DateLayout)
}
