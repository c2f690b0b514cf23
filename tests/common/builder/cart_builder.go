//go:build unit

package builder

import (
	domcart "devion-storefront/internal/domain/cart"
	reqdto "devion-storefront/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type CartItemBuilder struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ID:       "prod-001",
		Name:     "Wireless Keyboard",
		Price:    decimal.RequireFromString("49.99"),
		Image:    "/img/prod-001.jpg",
		Quantity: 1,
	}
}

func (b *CartItemBuilder) With(mutate func(*CartItemBuilder)) *CartItemBuilder {
	mutate(b)
	return b
}

func (b *CartItemBuilder) BuildDomain() domcart.LineItem {
	return domcart.LineItem{
		ID:        b.ID,
		Name:      b.Name,
		UnitPrice: b.Price,
		ImageRef:  b.Image,
		Quantity:  b.Quantity,
	}
}

func (b *CartItemBuilder) BuildAddRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{
		ID:       b.ID,
		Name:     b.Name,
		Price:    b.Price,
		Image:    b.Image,
		Quantity: b.Quantity,
	}
}

type CartBuilder struct {
	Items       []domcart.LineItem
	Discount    decimal.Decimal
	ShippingFee decimal.Decimal
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		Items: []domcart.LineItem{
			NewCartItemBuilder().BuildDomain(),
		},
		Discount:    decimal.Zero,
		ShippingFee: decimal.RequireFromString("4.99"),
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildDomain() *domcart.Cart {
	return domcart.ReconstructCart(b.Items, b.Discount, b.ShippingFee)
}
