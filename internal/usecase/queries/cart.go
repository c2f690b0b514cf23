package queries

import (
	"context"
	"fmt"

	"devion-storefront/internal/domain/cart"

	"github.com/google/uuid"
)

type CartLineView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
	ImageRef    string `json:"imageRef"`
}

type CartSummaryView struct {
	Items      []CartLineView `json:"items"`
	TotalItems int            `json:"totalItems"`
	Subtotal   string         `json:"subtotal"`
	Discount   string         `json:"discount"`
	Shipping   string         `json:"shipping"`
	Total      string         `json:"total"`
}

type CartReadStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error)
}

type CartQueries interface {
	GetSummary(ctx context.Context, sessionID uuid.UUID) (*CartSummaryView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetSummary(ctx context.Context, sessionID uuid.UUID) (*CartSummaryView, error) {
	c, err := q.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartSummaryView(c), nil
}

// NewCartSummaryView is a pure projection of the cart; it never mutates.
func NewCartSummaryView(c *cart.Cart) *CartSummaryView {
	items := c.Items()
	lines := make([]CartLineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLineView{
			ID:          item.ID,
			DisplayName: item.DisplayName(),
			Quantity:    item.Quantity,
			UnitPrice:   FormatAmount(item.UnitPrice),
			LineTotal:   FormatAmount(item.LineTotal()),
			ImageRef:    item.ImageRef,
		})
	}

	totals := c.Totals()
	return &CartSummaryView{
		Items:      lines,
		TotalItems: c.TotalItems(),
		Subtotal:   FormatAmount(totals.Subtotal),
		Discount:   "-" + FormatAmount(totals.Discount),
		Shipping:   FormatAmount(totals.Shipping),
		Total:      FormatAmount(totals.Total),
	}
}

// ItemCountLabel backs the cart badge.
func ItemCountLabel(c *cart.Cart) string {
	return fmt.Sprintf("%d", c.TotalItems())
}
