package cart

import (
	"github.com/shopspring/decimal"
)

// Cart is the session-scoped shopping cart: ordered line items plus a flat
// discount and a fixed shipping fee. Items keep insertion order; adding an
// existing id merges quantities instead of appending a duplicate line.
type Cart struct {
	items       []LineItem
	discount    decimal.Decimal
	shippingFee decimal.Decimal
}

func NewCart(shippingFee decimal.Decimal) *Cart {
	return &Cart{
		discount:    decimal.Zero,
		shippingFee: shippingFee,
	}
}

func ReconstructCart(items []LineItem, discount, shippingFee decimal.Decimal) *Cart {
	return &Cart{
		items:       items,
		discount:    discount,
		shippingFee: shippingFee,
	}
}

func (c *Cart) AddItem(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveItem filters the item out by id; absent ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	filtered := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
}

// UpdateQuantity sets the quantity exactly. A quantity of zero or less is
// equivalent to RemoveItem. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// ApplyDiscount replaces the current discount. Coupons never stack.
func (c *Cart) ApplyDiscount(amount decimal.Decimal) {
	c.discount = amount
}

func (c *Cart) Clear() {
	c.items = nil
	c.discount = decimal.Zero
}

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func (c *Cart) Discount() decimal.Decimal    { return c.discount }
func (c *Cart) ShippingFee() decimal.Decimal { return c.shippingFee }

func (c *Cart) Totals() Totals {
	return ComputeTotals(c.Subtotal(), c.discount, c.shippingFee)
}
