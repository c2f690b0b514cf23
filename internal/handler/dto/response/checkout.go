package response

import (
	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"
)

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fromFieldErrors(errs []checkout.FieldError) []FieldErrorResponse {
	if len(errs) == 0 {
		return nil
	}
	out := make([]FieldErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldErrorResponse{Field: e.Field, Message: e.Message})
	}
	return out
}

type CheckoutResponse struct {
	Order        *queries.OrderSummaryView `json:"order,omitempty"`
	Redirect     *shared.Redirect          `json:"redirect,omitempty"`
	Notification *shared.Notification      `json:"notification,omitempty"`
}

func FromCheckoutView(v *commands.CheckoutView) *CheckoutResponse {
	return &CheckoutResponse{
		Order:        v.Summary,
		Redirect:     v.Redirect,
		Notification: v.Notification,
	}
}

type CheckoutCouponResponse struct {
	Order   *queries.OrderSummaryView `json:"order"`
	Applied bool                      `json:"applied"`
	Message string                    `json:"message"`
}

func FromCheckoutCouponResult(r *commands.CheckoutCouponResult) *CheckoutCouponResponse {
	return &CheckoutCouponResponse{
		Order:   r.Summary,
		Applied: r.Applied,
		Message: r.Message,
	}
}

type SelectMethodResponse struct {
	Order       *queries.OrderSummaryView `json:"order,omitempty"`
	FieldErrors []FieldErrorResponse      `json:"fieldErrors,omitempty"`
}

func FromSelectMethodResult(r *commands.SelectMethodResult) *SelectMethodResponse {
	return &SelectMethodResponse{
		Order:       r.Summary,
		FieldErrors: fromFieldErrors(r.FieldErrors),
	}
}

type PlaceOrderResponse struct {
	Completed    bool                 `json:"completed"`
	Method       string               `json:"method,omitempty"`
	Reference    string               `json:"reference,omitempty"`
	FieldErrors  []FieldErrorResponse `json:"fieldErrors,omitempty"`
	Notification *shared.Notification `json:"notification,omitempty"`
	Redirect     *shared.Redirect     `json:"redirect,omitempty"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) *PlaceOrderResponse {
	return &PlaceOrderResponse{
		Completed:    r.Completed,
		Method:       r.Method,
		Reference:    r.Reference,
		FieldErrors:  fromFieldErrors(r.FieldErrors),
		Notification: r.Notification,
		Redirect:     r.Redirect,
	}
}

type WidgetOrderResponse struct {
	OrderID     string               `json:"orderId,omitempty"`
	FieldErrors []FieldErrorResponse `json:"fieldErrors,omitempty"`
}

func FromWidgetOrderResult(r *commands.WidgetOrderResult) *WidgetOrderResponse {
	return &WidgetOrderResponse{
		OrderID:     r.OrderID,
		FieldErrors: fromFieldErrors(r.FieldErrors),
	}
}

type CancelResponse struct {
	Order        *queries.OrderSummaryView `json:"order"`
	Notification *shared.Notification      `json:"notification,omitempty"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		Order:        r.Summary,
		Notification: r.Notification,
	}
}

type WidgetErrorResponse struct {
	Notification *shared.Notification `json:"notification"`
}

func FromWidgetErrorResult(r *commands.WidgetErrorResult) *WidgetErrorResponse {
	return &WidgetErrorResponse{Notification: r.Notification}
}
