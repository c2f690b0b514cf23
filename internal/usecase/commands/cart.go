package commands

import (
	"context"
	"fmt"

	"devion-storefront/internal/domain/cart"
	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/domain/coupon"
	"devion-storefront/internal/pkg/clock"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartResult struct {
	Summary      *queries.CartSummaryView
	Notification *shared.Notification
}

// CouponResult is the applied/rejected variant of a coupon application.
// Rejection is not an error: the prior discount is untouched and the
// message tells the user why.
type CouponResult struct {
	Summary  *queries.CartSummaryView
	Applied  bool
	Discount string
	Message  string
}

type BeginCheckoutResult struct {
	Summary  *queries.OrderSummaryView
	Redirect *shared.Redirect
}

type CartCommands interface {
	AddItem(ctx context.Context, sessionID uuid.UUID, item cart.LineItem) (*CartResult, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*CartResult, error)
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int) (*CartResult, error)
	ApplyCoupon(ctx context.Context, sessionID uuid.UUID, code string) (*CouponResult, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
	BeginCheckout(ctx context.Context, sessionID uuid.UUID) (*BeginCheckoutResult, error)
}

type cartCommandsImpl struct {
	cartRepo     CartRepository
	checkoutRepo CheckoutRepository
	engine       *coupon.Engine
	clock        clock.Clock
}

func NewCartCommands(
	cartRepo CartRepository,
	checkoutRepo CheckoutRepository,
	engine *coupon.Engine,
	clk clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		cartRepo:     cartRepo,
		checkoutRepo: checkoutRepo,
		engine:       engine,
		clock:        clk,
	}
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, sessionID uuid.UUID, item cart.LineItem) (*CartResult, error) {
	c, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	c.AddItem(item)
	if err := uc.cartRepo.Save(ctx, sessionID, c); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &CartResult{
		Summary:      queries.NewCartSummaryView(c),
		Notification: shared.Success(fmt.Sprintf("%s added to cart!", item.Name)),
	}, nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*CartResult, error) {
	c, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	c.RemoveItem(itemID)
	if err := uc.cartRepo.Save(ctx, sessionID, c); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &CartResult{Summary: queries.NewCartSummaryView(c)}, nil
}

func (uc *cartCommandsImpl) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int) (*CartResult, error) {
	c, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	c.UpdateQuantity(itemID, quantity)
	if err := uc.cartRepo.Save(ctx, sessionID, c); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &CartResult{Summary: queries.NewCartSummaryView(c)}, nil
}

func (uc *cartCommandsImpl) ApplyCoupon(ctx context.Context, sessionID uuid.UUID, code string) (*CouponResult, error) {
	c, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	amount, evalErr := uc.engine.Evaluate(code, c.Subtotal(), c.ShippingFee())
	if evalErr != nil {
		return &CouponResult{
			Summary: queries.NewCartSummaryView(c),
			Applied: false,
			Message: "Invalid coupon code",
		}, nil
	}

	c.ApplyDiscount(amount)
	if err := uc.cartRepo.Save(ctx, sessionID, c); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &CouponResult{
		Summary:  queries.NewCartSummaryView(c),
		Applied:  true,
		Discount: amount.StringFixed(2),
		Message:  fmt.Sprintf("Coupon applied! Discount: $%s", amount.StringFixed(2)),
	}, nil
}

func (uc *cartCommandsImpl) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := uc.cartRepo.Clear(ctx, sessionID); err != nil {
		return errs.Mark(err, errs.ErrStorageOperationFailed)
	}
	return nil
}

// BeginCheckout freezes the current cart into a checkout snapshot. The copy
// is deep: later cart mutations never leak into the snapshot.
func (uc *cartCommandsImpl) BeginCheckout(ctx context.Context, sessionID uuid.UUID) (*BeginCheckoutResult, error) {
	c, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}
	if c.IsEmpty() {
		return nil, errs.ErrCartEmpty
	}

	snapshot, err := checkout.NewSnapshot(c, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	state := checkout.NewState(snapshot)
	if err := uc.checkoutRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &BeginCheckoutResult{
		Summary:  queries.NewOrderSummaryView(state),
		Redirect: shared.RedirectTo(shared.DestinationCheckout),
	}, nil
}
