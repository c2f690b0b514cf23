package cart

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxDisplayNameLength = 30

// LineItem is a purchasable line in the cart. Fields are accepted as given
// from the listing page; there is no product catalog to validate against.
type LineItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ImageRef  string
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DisplayName truncates long product names for the cart and order summaries.
func (i LineItem) DisplayName() string {
	if utf8.RuneCountInString(i.Name) <= maxDisplayNameLength {
		return i.Name
	}
	runes := []rune(i.Name)
	return string(runes[:maxDisplayNameLength]) + "..."
}

// Totals is the computed money breakdown of a cart or snapshot.
// Total = Subtotal - Discount + Shipping, deliberately not clamped at zero.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

func ComputeTotals(subtotal, discount, shipping decimal.Decimal) Totals {
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal.Sub(discount).Add(shipping),
	}
}
