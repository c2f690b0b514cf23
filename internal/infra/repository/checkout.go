package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/infra"
	"devion-storefront/internal/infra/kv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const checkoutKey = "checkoutData"

type shippingFormRecord struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// checkoutRecord is the persisted checkout document. The cart array, totals
// and the epoch-millisecond timestamp are the original client-side layout;
// stage, paymentMethod and shippingForm are carried alongside so the session
// survives the server process.
type checkoutRecord struct {
	Cart          []lineItemRecord    `json:"cart"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Shipping      decimal.Decimal     `json:"shipping"`
	Total         decimal.Decimal     `json:"total"`
	Timestamp     int64               `json:"timestamp"`
	Stage         string              `json:"stage,omitempty"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	ShippingForm  *shippingFormRecord `json:"shippingForm,omitempty"`
}

type CheckoutRepository struct {
	store kv.Store
}

func NewCheckoutRepository(store kv.Store) *CheckoutRepository {
	return &CheckoutRepository{store: store}
}

// Load returns a NOT_FOUND-kinded error when no checkout document exists.
// Unreadable documents are dropped and reported as absent; the caller
// redirects back to the shop either way.
func (r *CheckoutRepository) Load(ctx context.Context, sessionID uuid.UUID) (*checkout.State, error) {
	raw, err := r.store.Get(ctx, sessionID, checkoutKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, infra.WrapRepoErr("checkout data not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read checkout data", err)
	}

	var rec checkoutRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		slog.Warn("discarding unreadable checkout data", "session_id", sessionID, "error", err)
		if delErr := r.store.Delete(ctx, sessionID, checkoutKey); delErr != nil {
			slog.Warn("failed to drop unreadable checkout data", "session_id", sessionID, "error", delErr)
		}
		return nil, infra.WrapRepoErr("checkout data unreadable", err, infra.KindNotFound)
	}

	snapshot := checkout.ReconstructSnapshot(
		fromLineItemRecords(rec.Cart),
		rec.Subtotal, rec.Discount, rec.Shipping, rec.Total,
		time.UnixMilli(rec.Timestamp),
	)

	stage := checkout.Stage(rec.Stage)
	if rec.Stage == "" {
		stage = checkout.StageAwaitingPayment
	}

	var form checkout.ShippingForm
	if rec.ShippingForm != nil {
		form = checkout.ShippingForm{
			FirstName:  rec.ShippingForm.FirstName,
			LastName:   rec.ShippingForm.LastName,
			Email:      rec.ShippingForm.Email,
			Address:    rec.ShippingForm.Address,
			City:       rec.ShippingForm.City,
			Region:     rec.ShippingForm.Region,
			PostalCode: rec.ShippingForm.PostalCode,
			Country:    rec.ShippingForm.Country,
		}
	}

	return checkout.ReconstructState(snapshot, stage, checkout.PaymentMethod(rec.PaymentMethod), form), nil
}

func (r *CheckoutRepository) Save(ctx context.Context, sessionID uuid.UUID, state *checkout.State) error {
	snap := state.Snapshot()
	rec := checkoutRecord{
		Cart:          toLineItemRecords(snap.Items()),
		Subtotal:      snap.Subtotal(),
		Discount:      snap.Discount(),
		Shipping:      snap.Shipping(),
		Total:         snap.Total(),
		Timestamp:     snap.CreatedAt().UnixMilli(),
		Stage:         state.Stage().String(),
		PaymentMethod: state.Method().String(),
	}

	if form := state.Form(); form != (checkout.ShippingForm{}) {
		rec.ShippingForm = &shippingFormRecord{
			FirstName:  form.FirstName,
			LastName:   form.LastName,
			Email:      form.Email,
			Address:    form.Address,
			City:       form.City,
			Region:     form.Region,
			PostalCode: form.PostalCode,
			Country:    form.Country,
		}
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to encode checkout data", err, infra.KindCorruptData)
	}
	if err := r.store.Put(ctx, sessionID, checkoutKey, raw); err != nil {
		return infra.WrapRepoErr("failed to write checkout data", err)
	}
	return nil
}

func (r *CheckoutRepository) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.store.Delete(ctx, sessionID, checkoutKey); err != nil {
		return infra.WrapRepoErr("failed to clear checkout data", err)
	}
	return nil
}
