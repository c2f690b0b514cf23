package request

import (
	"devion-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ID       string          `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity,omitempty"`
}

func (r AddItemRequest) ToDomain() cart.LineItem {
	return cart.LineItem{
		ID:        r.ID,
		Name:      r.Name,
		UnitPrice: r.Price,
		ImageRef:  r.Image,
		Quantity:  r.Quantity,
	}
}

// UpdateQuantityRequest uses a pointer so an explicit zero survives binding;
// zero or negative quantities remove the item.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CouponRequest struct {
	Code string `json:"code" binding:"required"`
}
