package request

import (
	"devion-storefront/internal/domain/checkout"
)

type ShippingFormRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (r ShippingFormRequest) ToDomain() checkout.ShippingForm {
	return checkout.ShippingForm{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Address:    r.Address,
		City:       r.City,
		Region:     r.Region,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

type CardDetailsRequest struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holderName"`
}

func (r CardDetailsRequest) ToDomain() checkout.CardDetails {
	return checkout.CardDetails{
		Number:     r.Number,
		Expiry:     r.Expiry,
		CVV:        r.CVV,
		HolderName: r.HolderName,
	}
}

type SelectPaymentMethodRequest struct {
	Method string              `json:"method" binding:"required"`
	Form   ShippingFormRequest `json:"form"`
}

type PlaceOrderRequest struct {
	Form ShippingFormRequest `json:"form"`
	Card *CardDetailsRequest `json:"card,omitempty"`
}

type WidgetApproveRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type WidgetErrorRequest struct {
	Message string `json:"message" binding:"required"`
}
