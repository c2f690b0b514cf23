package queries

import "github.com/shopspring/decimal"

// FormatAmount renders a money amount for the UI contract: two decimal
// places with a currency prefix.
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
