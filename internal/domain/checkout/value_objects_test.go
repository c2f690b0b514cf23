//go:build unit

package checkout_test

import (
	"strings"
	"testing"

	"devion-storefront/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(errs []checkout.FieldError) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestShippingForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*checkout.ShippingForm)
		wantFields []string
	}{
		{
			name:   "complete form passes",
			mutate: func(*checkout.ShippingForm) {},
		},
		{
			name:       "missing first name",
			mutate:     func(f *checkout.ShippingForm) { f.FirstName = "" },
			wantFields: []string{"firstName"},
		},
		{
			name:       "whitespace only counts as empty",
			mutate:     func(f *checkout.ShippingForm) { f.Address = "   " },
			wantFields: []string{"address"},
		},
		{
			name:       "malformed email",
			mutate:     func(f *checkout.ShippingForm) { f.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "email without domain dot",
			mutate:     func(f *checkout.ShippingForm) { f.Email = "a@b" },
			wantFields: []string{"email"},
		},
		{
			name: "multiple missing fields reported in field order",
			mutate: func(f *checkout.ShippingForm) {
				f.FirstName = ""
				f.City = ""
				f.Country = ""
			},
			wantFields: []string{"firstName", "city", "country"},
		},
		{
			name:   "region is optional",
			mutate: func(f *checkout.ShippingForm) { f.Region = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := checkout.ShippingForm{
				FirstName:  "Ana",
				LastName:   "Martinez",
				Email:      "ana@example.com",
				Address:    "Av. Reforma 123",
				City:       "Mexico City",
				Region:     "CDMX",
				PostalCode: "06600",
				Country:    "MX",
			}
			tt.mutate(&form)

			errs := form.Validate()
			assert.Equal(t, tt.wantFields, fieldsOf(errs))
		})
	}
}

func TestCardDetails_Validate(t *testing.T) {
	valid := checkout.CardDetails{
		Number:     "4242 4242 4242 4242",
		Expiry:     "12/27",
		CVV:        "123",
		HolderName: "Ana Martinez",
	}

	tests := []struct {
		name       string
		mutate     func(*checkout.CardDetails)
		wantFields []string
	}{
		{
			name:   "spaced sixteen digit number passes",
			mutate: func(*checkout.CardDetails) {},
		},
		{
			name:   "fifteen digits passes",
			mutate: func(c *checkout.CardDetails) { c.Number = "378282246310005" },
		},
		{
			name:       "fourteen digits rejected",
			mutate:     func(c *checkout.CardDetails) { c.Number = "37828224631000" },
			wantFields: []string{"cardNumber"},
		},
		{
			name:       "seventeen digits rejected",
			mutate:     func(c *checkout.CardDetails) { c.Number = "42424242424242424" },
			wantFields: []string{"cardNumber"},
		},
		{
			name:       "letters in number rejected",
			mutate:     func(c *checkout.CardDetails) { c.Number = "4242 4242 4242 424x" },
			wantFields: []string{"cardNumber"},
		},
		{
			name:       "expiry without slash rejected",
			mutate:     func(c *checkout.CardDetails) { c.Expiry = "1227" },
			wantFields: []string{"expiry"},
		},
		{
			name:       "single digit month rejected",
			mutate:     func(c *checkout.CardDetails) { c.Expiry = "1/27" },
			wantFields: []string{"expiry"},
		},
		{
			name:       "two digit cvv rejected",
			mutate:     func(c *checkout.CardDetails) { c.CVV = "12" },
			wantFields: []string{"cvv"},
		},
		{
			name:   "four digit cvv passes",
			mutate: func(c *checkout.CardDetails) { c.CVV = "1234" },
		},
		{
			name:       "blank holder rejected",
			mutate:     func(c *checkout.CardDetails) { c.HolderName = "  " },
			wantFields: []string{"cardholderName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := valid
			tt.mutate(&card)
			assert.Equal(t, tt.wantFields, fieldsOf(card.Validate()))
		})
	}
}

func TestNewCashReference(t *testing.T) {
	seen := map[string]bool{}
	for range 50 {
		ref := checkout.NewCashReference()
		require.Len(t, ref, 10)
		assert.True(t, strings.HasPrefix(ref, "OX"))
		for _, r := range ref[2:] {
			assert.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(r))
		}
		seen[ref] = true
	}
	// 50 draws from a 36^8 space colliding would indicate a broken generator
	assert.Greater(t, len(seen), 1)
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"card", "paypal", "mercadopago", "oxxo"} {
		m, err := checkout.ParsePaymentMethod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, m.String())
	}

	_, err := checkout.ParsePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, checkout.ErrUnknownPaymentMethod)
}

func TestPaymentMethod_IsWidget(t *testing.T) {
	assert.True(t, checkout.MethodPayPal.IsWidget())
	assert.True(t, checkout.MethodMercadoPago.IsWidget())
	assert.False(t, checkout.MethodCard.IsWidget())
	assert.False(t, checkout.MethodOxxo.IsWidget())
}
