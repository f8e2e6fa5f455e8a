package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places amounts and percentages are reported with.
const MoneyPlaces = 2

// FormatMoney formats an amount with a fixed two-place precision.
// Example: 135.5 returns "135.50", 10 returns "10.00"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPlaces)
}

// FormatPercentage formats a percentage with a trailing percent sign.
// Example: 67.75 returns "67.75%", 80 returns "80.00%"
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(MoneyPlaces) + "%"
}

// FormatWithCurrency appends the currency identifier to a formatted amount.
// Example: (110, "usd") returns "110.00 usd"
func FormatWithCurrency(amount decimal.Decimal, currencyID string) string {
	return FormatMoney(amount) + " " + currencyID
}
