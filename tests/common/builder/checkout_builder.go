//go:build unit

package builder

import (
	"time"

	domcheckout "devion-storefront/internal/domain/checkout"
	reqdto "devion-storefront/internal/handler/dto/request"
)

type CheckoutBuilder struct {
	Cart      *CartBuilder
	CreatedAt time.Time
	Stage     domcheckout.Stage
	Method    domcheckout.PaymentMethod
	Form      domcheckout.ShippingForm
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Cart:      NewCartBuilder(),
		CreatedAt: time.Now(),
		Stage:     domcheckout.StageAwaitingPayment,
		Form:      NewShippingFormBuilder().BuildDomain(),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildDomain() *domcheckout.State {
	c := b.Cart.BuildDomain()
	totals := c.Totals()
	snapshot := domcheckout.ReconstructSnapshot(
		c.Items(),
		totals.Subtotal, totals.Discount, totals.Shipping, totals.Total,
		b.CreatedAt,
	)
	return domcheckout.ReconstructState(snapshot, b.Stage, b.Method, b.Form)
}

type ShippingFormBuilder struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	City       string
	Region     string
	PostalCode string
	Country    string
}

func NewShippingFormBuilder() *ShippingFormBuilder {
	return &ShippingFormBuilder{
		FirstName:  "Ana",
		LastName:   "Martinez",
		Email:      "ana@example.com",
		Address:    "Av. Reforma 123",
		City:       "Mexico City",
		Region:     "CDMX",
		PostalCode: "06600",
		Country:    "MX",
	}
}

func (b *ShippingFormBuilder) With(mutate func(*ShippingFormBuilder)) *ShippingFormBuilder {
	mutate(b)
	return b
}

func (b *ShippingFormBuilder) BuildDomain() domcheckout.ShippingForm {
	return domcheckout.ShippingForm{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Address:    b.Address,
		City:       b.City,
		Region:     b.Region,
		PostalCode: b.PostalCode,
		Country:    b.Country,
	}
}

func (b *ShippingFormBuilder) BuildRequestDTO() reqdto.ShippingFormRequest {
	return reqdto.ShippingFormRequest{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Address:    b.Address,
		City:       b.City,
		Region:     b.Region,
		PostalCode: b.PostalCode,
		Country:    b.Country,
	}
}
