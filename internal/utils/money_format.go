package utils

import "github.com/shopspring/decimal"

// FormatWithPrecision formats an amount rounded half away from zero to the given precision.
// The result always has exactly precision decimal places: 12.345 gives "12.35", 12 gives "12.00".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
