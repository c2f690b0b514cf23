package response

import (
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"
)

type CartResponse struct {
	Cart         *queries.CartSummaryView `json:"cart"`
	Notification *shared.Notification     `json:"notification,omitempty"`
}

func FromCartResult(r *commands.CartResult) *CartResponse {
	return &CartResponse{
		Cart:         r.Summary,
		Notification: r.Notification,
	}
}

type CouponResponse struct {
	Cart    *queries.CartSummaryView `json:"cart"`
	Applied bool                     `json:"applied"`
	Message string                   `json:"message"`
}

func FromCouponResult(r *commands.CouponResult) *CouponResponse {
	return &CouponResponse{
		Cart:    r.Summary,
		Applied: r.Applied,
		Message: r.Message,
	}
}

type BeginCheckoutResponse struct {
	Order    *queries.OrderSummaryView `json:"order"`
	Redirect *shared.Redirect          `json:"redirect"`
}

func FromBeginCheckoutResult(r *commands.BeginCheckoutResult) *BeginCheckoutResponse {
	return &BeginCheckoutResponse{
		Order:    r.Summary,
		Redirect: r.Redirect,
	}
}
