package commands

import (
	"context"

	"devion-storefront/internal/domain/cart"
	"devion-storefront/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartRepository persists the live cart. Load never fails on absent or
// corrupt data: both degrade to an empty cart (logged by the infra layer).
type CartRepository interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, sessionID uuid.UUID, c *cart.Cart) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// CheckoutRepository persists the frozen checkout state. Load returns a
// NOT_FOUND-kinded error when no snapshot exists; corrupt data is treated
// the same way.
type CheckoutRepository interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*checkout.State, error)
	Save(ctx context.Context, sessionID uuid.UUID, st *checkout.State) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// OrderDescriptor is the order handed to a payment gateway widget.
type OrderDescriptor struct {
	Amount      decimal.Decimal
	Currency    string
	ItemCount   int
	Description string
}

// CaptureResult normalizes a gateway's approval payload.
type CaptureResult struct {
	TransactionID string
	PayerName     string
}

// PaymentGateway is the boundary over one embedded payment SDK, normalizing
// create/capture into the checkout vocabulary.
type PaymentGateway interface {
	Method() checkout.PaymentMethod
	CreateOrder(ctx context.Context, desc OrderDescriptor) (string, error)
	Capture(ctx context.Context, orderID string) (*CaptureResult, error)
}
