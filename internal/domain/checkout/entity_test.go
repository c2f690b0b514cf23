//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"devion-storefront/internal/domain/cart"
	"devion-storefront/internal/domain/checkout"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.NewCart(dec("4.99"))
	c.AddItem(cart.LineItem{ID: "a", Name: "Item A", UnitPrice: dec("25.00"), Quantity: 2})
	c.AddItem(cart.LineItem{ID: "b", Name: "Item B", UnitPrice: dec("9.50"), Quantity: 1})
	return c
}

func validForm() checkout.ShippingForm {
	return checkout.ShippingForm{
		FirstName:  "Ana",
		LastName:   "Martinez",
		Email:      "ana@example.com",
		Address:    "Av. Reforma 123",
		City:       "Mexico City",
		PostalCode: "06600",
		Country:    "MX",
	}
}

func TestNewSnapshot(t *testing.T) {
	now := time.Now()

	snap, err := checkout.NewSnapshot(filledCart(t), now)
	require.NoError(t, err)

	assert.True(t, snap.Subtotal().Equal(dec("59.50")))
	assert.True(t, snap.Shipping().Equal(dec("4.99")))
	assert.True(t, snap.Total().Equal(dec("64.49")))
	assert.Equal(t, now, snap.CreatedAt())
}

func TestNewSnapshot_EmptyCart(t *testing.T) {
	_, err := checkout.NewSnapshot(cart.NewCart(dec("4.99")), time.Now())
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestNewSnapshot_IndependentOfLaterCartMutations(t *testing.T) {
	c := filledCart(t)
	snap, err := checkout.NewSnapshot(c, time.Now())
	require.NoError(t, err)

	c.AddItem(cart.LineItem{ID: "c", Name: "Item C", UnitPrice: dec("99.00"), Quantity: 5})
	c.UpdateQuantity("a", 10)
	c.Clear()

	assert.Len(t, snap.Items(), 2)
	assert.True(t, snap.Subtotal().Equal(dec("59.50")))
}

func TestSnapshot_ApplyDiscountRecomputesTotal(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)

	snap.ApplyDiscount(dec("20.00"))
	assert.True(t, snap.Total().Equal(dec("44.49")))

	// last write wins
	snap.ApplyDiscount(dec("10.00"))
	assert.True(t, snap.Total().Equal(dec("54.49")))
}

func TestSnapshot_ExpiredAt(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := checkout.ReconstructSnapshot(nil, dec("10"), dec("0"), dec("4.99"), dec("14.99"), createdAt)
	ttl := time.Hour

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{name: "fresh snapshot honored", age: time.Minute, want: false},
		{name: "age exactly at the boundary still honored", age: time.Hour, want: false},
		{name: "one millisecond past the boundary is stale", age: time.Hour + time.Millisecond, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snap.ExpiredAt(createdAt.Add(tt.age), ttl))
		})
	}
}

func TestSnapshot_TouchRestartsExpiryWindow(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := checkout.ReconstructSnapshot(nil, dec("10"), dec("0"), dec("4.99"), dec("14.99"), createdAt)

	almostExpired := createdAt.Add(59 * time.Minute)
	snap.Touch(almostExpired)

	assert.False(t, snap.ExpiredAt(createdAt.Add(90*time.Minute), time.Hour))
	assert.True(t, snap.ExpiredAt(almostExpired.Add(time.Hour+time.Second), time.Hour))
}

func TestState_SelectPaymentMethod(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)
	st := checkout.NewState(snap)

	fieldErrs, selErr := st.SelectPaymentMethod(checkout.MethodCard, validForm())
	require.NoError(t, selErr)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, checkout.MethodCard, st.Method())
	assert.True(t, st.HasMethod())
}

func TestState_SelectPaymentMethod_IncompleteForm(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)
	st := checkout.NewState(snap)

	form := validForm()
	form.Email = ""
	fieldErrs, selErr := st.SelectPaymentMethod(checkout.MethodCard, form)

	assert.Error(t, selErr)
	assert.NotEmpty(t, fieldErrs)
	assert.False(t, st.HasMethod())
}

func TestState_CompleteLatch(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)
	st := checkout.NewState(snap)

	_, selErr := st.SelectPaymentMethod(checkout.MethodCard, validForm())
	require.NoError(t, selErr)
	require.NoError(t, st.BeginPayment())

	require.NoError(t, st.Complete())
	assert.Equal(t, checkout.StageCompleted, st.Stage())

	// the second submission of a double click must fail
	assert.ErrorIs(t, st.Complete(), checkout.ErrAlreadyCompleted)
}

func TestState_BeginPaymentRequiresAwaitingStage(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)
	st := checkout.NewState(snap)

	require.NoError(t, st.BeginPayment())
	assert.ErrorIs(t, st.BeginPayment(), checkout.ErrInvalidStage)
}

func TestState_CancelPaymentRetainsMethod(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)
	st := checkout.NewState(snap)

	_, selErr := st.SelectPaymentMethod(checkout.MethodPayPal, validForm())
	require.NoError(t, selErr)
	require.NoError(t, st.BeginPayment())

	st.CancelPayment()

	assert.Equal(t, checkout.StageAwaitingPayment, st.Stage())
	assert.Equal(t, checkout.MethodPayPal, st.Method())
}

func TestState_AbandonIsTerminal(t *testing.T) {
	snap, err := checkout.NewSnapshot(filledCart(t), time.Now())
	require.NoError(t, err)
	st := checkout.NewState(snap)

	st.Abandon()
	assert.Equal(t, checkout.StageAbandoned, st.Stage())
	assert.ErrorIs(t, st.Complete(), checkout.ErrSessionAbandoned)
}
