package utils

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatWithPrecision formats an amount with the given precision
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// PercentOf returns part/whole as a percentage string with one fractional digit.
// A zero whole yields "0.0".
func PercentOf(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return FormatWithPrecision(decimal.Zero, 1)
	}
	return FormatWithPrecision(part.Div(whole).Mul(hundred), 1)
}
