package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"devion-storefront/internal/domain/cart"
	"devion-storefront/internal/infra"
	"devion-storefront/internal/infra/kv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Storage keys mirror the original client-side layout: the cart is a bare
// item array under "cart", the applied discount rides in a sidecar key so the
// array shape stays stable.
const (
	cartKey         = "cart"
	cartDiscountKey = "cartDiscount"
)

type lineItemRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

type discountRecord struct {
	Amount decimal.Decimal `json:"amount"`
}

func toLineItemRecords(items []cart.LineItem) []lineItemRecord {
	records := make([]lineItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, lineItemRecord{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.UnitPrice,
			Image:    item.ImageRef,
			Quantity: item.Quantity,
		})
	}
	return records
}

func fromLineItemRecords(records []lineItemRecord) []cart.LineItem {
	items := make([]cart.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, cart.LineItem{
			ID:        rec.ID,
			Name:      rec.Name,
			UnitPrice: rec.Price,
			ImageRef:  rec.Image,
			Quantity:  rec.Quantity,
		})
	}
	return items
}

type CartRepository struct {
	store       kv.Store
	shippingFee decimal.Decimal
}

func NewCartRepository(store kv.Store, shippingFee decimal.Decimal) *CartRepository {
	return &CartRepository{store: store, shippingFee: shippingFee}
}

// Load never fails on absent or unreadable data: both degrade to an empty
// cart so a corrupted session can keep shopping.
func (r *CartRepository) Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error) {
	raw, err := r.store.Get(ctx, sessionID, cartKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return cart.NewCart(r.shippingFee), nil
		}
		return nil, infra.WrapRepoErr("failed to read cart", err)
	}

	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("discarding unreadable cart data", "session_id", sessionID, "error", err)
		return cart.NewCart(r.shippingFee), nil
	}

	discount := decimal.Zero
	if rawDiscount, err := r.store.Get(ctx, sessionID, cartDiscountKey); err == nil {
		var rec discountRecord
		if err := json.Unmarshal(rawDiscount, &rec); err == nil {
			discount = rec.Amount
		} else {
			slog.Warn("discarding unreadable cart discount", "session_id", sessionID, "error", err)
		}
	}

	return cart.ReconstructCart(fromLineItemRecords(records), discount, r.shippingFee), nil
}

func (r *CartRepository) Save(ctx context.Context, sessionID uuid.UUID, c *cart.Cart) error {
	raw, err := json.Marshal(toLineItemRecords(c.Items()))
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err, infra.KindCorruptData)
	}
	if err := r.store.Put(ctx, sessionID, cartKey, raw); err != nil {
		return infra.WrapRepoErr("failed to write cart", err)
	}

	rawDiscount, err := json.Marshal(discountRecord{Amount: c.Discount()})
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart discount", err, infra.KindCorruptData)
	}
	if err := r.store.Put(ctx, sessionID, cartDiscountKey, rawDiscount); err != nil {
		return infra.WrapRepoErr("failed to write cart discount", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.store.Delete(ctx, sessionID, cartKey); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	if err := r.store.Delete(ctx, sessionID, cartDiscountKey); err != nil {
		return infra.WrapRepoErr("failed to clear cart discount", err)
	}
	return nil
}
