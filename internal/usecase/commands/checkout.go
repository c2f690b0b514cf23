package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/domain/coupon"
	"devion-storefront/internal/infra"
	"devion-storefront/internal/pkg/clock"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// CheckoutView is the entry result: either a live order summary or a
// redirect back to the shop when no honored snapshot exists.
type CheckoutView struct {
	Summary      *queries.OrderSummaryView
	Redirect     *shared.Redirect
	Notification *shared.Notification
}

type CheckoutCouponResult struct {
	Summary *queries.OrderSummaryView
	Applied bool
	Message string
}

type SelectMethodResult struct {
	Summary     *queries.OrderSummaryView
	FieldErrors []checkout.FieldError
}

type PlaceOrderInput struct {
	Form checkout.ShippingForm
	Card *checkout.CardDetails
}

// PlaceOrderResult covers both locally-completed orders and the widget
// hand-off. FieldErrors set means validation failed and nothing changed.
type PlaceOrderResult struct {
	Completed    bool
	Method       string
	Reference    string
	FieldErrors  []checkout.FieldError
	Notification *shared.Notification
	Redirect     *shared.Redirect
}

type WidgetOrderResult struct {
	OrderID     string
	FieldErrors []checkout.FieldError
}

type CancelResult struct {
	Summary      *queries.OrderSummaryView
	Notification *shared.Notification
}

type WidgetErrorResult struct {
	Notification *shared.Notification
}

type CheckoutCommands interface {
	Resume(ctx context.Context, sessionID uuid.UUID) (*CheckoutView, error)
	ApplyCoupon(ctx context.Context, sessionID uuid.UUID, code string) (*CheckoutCouponResult, error)
	SelectPaymentMethod(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod, form checkout.ShippingForm) (*SelectMethodResult, error)
	PlaceOrder(ctx context.Context, sessionID uuid.UUID, input PlaceOrderInput) (*PlaceOrderResult, error)
	CreateWidgetOrder(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod) (*WidgetOrderResult, error)
	ApproveWidgetPayment(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod, orderID string) (*PlaceOrderResult, error)
	CancelWidgetPayment(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod) (*CancelResult, error)
	ReportWidgetError(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod, message string) (*WidgetErrorResult, error)
}

type checkoutCommandsImpl struct {
	cartRepo     CartRepository
	checkoutRepo CheckoutRepository
	engine       *coupon.Engine
	gateways     map[checkout.PaymentMethod]PaymentGateway
	clock        clock.Clock
	snapshotTTL  time.Duration
	currency     string
}

func NewCheckoutCommands(
	cartRepo CartRepository,
	checkoutRepo CheckoutRepository,
	engine *coupon.Engine,
	gateways map[checkout.PaymentMethod]PaymentGateway,
	clk clock.Clock,
	snapshotTTL time.Duration,
	currency string,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		cartRepo:     cartRepo,
		checkoutRepo: checkoutRepo,
		engine:       engine,
		gateways:     gateways,
		clock:        clk,
		snapshotTTL:  snapshotTTL,
		currency:     currency,
	}
}

// loadState returns the persisted checkout state, or nil when it is absent
// or expired. An expired snapshot is removed from persistence on detection.
func (uc *checkoutCommandsImpl) loadState(ctx context.Context, sessionID uuid.UUID) (*checkout.State, error) {
	state, err := uc.checkoutRepo.Load(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	if state.Snapshot().ExpiredAt(uc.clock.Now(), uc.snapshotTTL) {
		if clearErr := uc.checkoutRepo.Clear(ctx, sessionID); clearErr != nil {
			slog.Warn("failed to clear expired checkout data", "error", clearErr)
		}
		return nil, nil
	}
	return state, nil
}

func abandonedView() *CheckoutView {
	return &CheckoutView{
		Redirect:     shared.RedirectTo(shared.DestinationShop),
		Notification: shared.Warning("No checkout data found. Redirecting to shop..."),
	}
}

func (uc *checkoutCommandsImpl) Resume(ctx context.Context, sessionID uuid.UUID) (*CheckoutView, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return abandonedView(), nil
	}
	return &CheckoutView{Summary: queries.NewOrderSummaryView(state)}, nil
}

// ApplyCoupon re-runs the engine against the frozen snapshot totals and
// restarts the expiry window on success. Last write wins; rejection leaves
// the prior discount in place.
func (uc *checkoutCommandsImpl) ApplyCoupon(ctx context.Context, sessionID uuid.UUID, code string) (*CheckoutCouponResult, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errs.ErrCheckoutNotFound
	}

	snap := state.Snapshot()
	amount, evalErr := uc.engine.Evaluate(code, snap.Subtotal(), snap.Shipping())
	if evalErr != nil {
		return &CheckoutCouponResult{
			Summary: queries.NewOrderSummaryView(state),
			Applied: false,
			Message: "Invalid coupon code",
		}, nil
	}

	snap.ApplyDiscount(amount)
	snap.Touch(uc.clock.Now())
	if err := uc.checkoutRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &CheckoutCouponResult{
		Summary: queries.NewOrderSummaryView(state),
		Applied: true,
		Message: fmt.Sprintf("Coupon applied! Discount: $%s", amount.StringFixed(2)),
	}, nil
}

func (uc *checkoutCommandsImpl) SelectPaymentMethod(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod, form checkout.ShippingForm) (*SelectMethodResult, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errs.ErrCheckoutNotFound
	}

	fieldErrs, selErr := state.SelectPaymentMethod(method, form)
	if len(fieldErrs) > 0 {
		return &SelectMethodResult{
			Summary:     queries.NewOrderSummaryView(state),
			FieldErrors: fieldErrs,
		}, nil
	}
	if selErr != nil {
		return nil, errs.Mark(selErr, errs.ErrOrderAlreadyCompleted)
	}

	if err := uc.checkoutRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}
	return &SelectMethodResult{Summary: queries.NewOrderSummaryView(state)}, nil
}

func (uc *checkoutCommandsImpl) PlaceOrder(ctx context.Context, sessionID uuid.UUID, input PlaceOrderInput) (*PlaceOrderResult, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errs.ErrCheckoutNotFound
	}

	if fieldErrs := input.Form.Validate(); len(fieldErrs) > 0 {
		return &PlaceOrderResult{
			FieldErrors:  fieldErrs,
			Notification: shared.Error("Please fill in all required fields."),
		}, nil
	}

	if !state.HasMethod() {
		return &PlaceOrderResult{
			Notification: shared.Error("Please select a payment method."),
		}, errs.ErrNoPaymentMethod
	}

	method := state.Method()
	switch method {
	case checkout.MethodCard:
		if input.Card == nil {
			return &PlaceOrderResult{
				Notification: shared.Error("Please fill in all card details."),
			}, errs.ErrInvalidCardDetails
		}
		if fieldErrs := input.Card.Validate(); len(fieldErrs) > 0 {
			return &PlaceOrderResult{
				FieldErrors:  fieldErrs,
				Notification: shared.Error("Please fill in all card details."),
			}, errs.ErrInvalidCardDetails
		}
		return uc.completeLocalOrder(ctx, sessionID, state, "")

	case checkout.MethodOxxo:
		return uc.completeLocalOrder(ctx, sessionID, state, checkout.NewCashReference())

	default:
		// PayPal / Mercado Pago complete through the widget's approval
		// callback, never through the place-order button.
		return &PlaceOrderResult{
			Notification: shared.Info(fmt.Sprintf("Please complete the payment using the %s button above.", method.DisplayName())),
		}, nil
	}
}

// completeLocalOrder runs the simulated card/cash success path behind the
// one-way latch: begin payment, complete, then clear both persisted states.
func (uc *checkoutCommandsImpl) completeLocalOrder(ctx context.Context, sessionID uuid.UUID, state *checkout.State, reference string) (*PlaceOrderResult, error) {
	if err := state.BeginPayment(); err != nil {
		return &PlaceOrderResult{
			Notification: shared.Warning("Your order is already being processed."),
		}, nil
	}
	if err := uc.checkoutRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return uc.completeOrder(ctx, sessionID, state, reference, "", "")
}

// completeOrder is the single terminal success path shared by every payment
// method. It consumes the completion latch, clears both persisted states and
// emits the confirmation redirect.
func (uc *checkoutCommandsImpl) completeOrder(ctx context.Context, sessionID uuid.UUID, state *checkout.State, reference, transactionID, payerName string) (*PlaceOrderResult, error) {
	if err := state.Complete(); err != nil {
		return nil, errs.Mark(err, errs.ErrOrderAlreadyCompleted)
	}

	method := state.Method()
	amount := state.Snapshot().Total()

	if err := uc.cartRepo.Clear(ctx, sessionID); err != nil {
		slog.Warn("failed to clear cart after order completion", "error", err)
	}
	if err := uc.checkoutRepo.Clear(ctx, sessionID); err != nil {
		slog.Warn("failed to clear checkout data after order completion", "error", err)
	}

	result := &PlaceOrderResult{
		Completed: true,
		Method:    method.DisplayName(),
	}

	switch {
	case transactionID != "":
		result.Reference = transactionID
		result.Notification = shared.Success(fmt.Sprintf("Payment successful! Thank you for your purchase, %s.", payerName))
		result.Redirect = shared.RedirectToConfirmation(transactionID, payerName, amount.StringFixed(2), uc.currency)
	case reference != "":
		result.Reference = reference
		result.Notification = shared.Success(fmt.Sprintf(
			"Order placed successfully! Your %s reference: %s. Please complete your payment within 24 hours.",
			method.DisplayName(), reference,
		))
		result.Redirect = shared.RedirectTo(shared.DestinationHome)
	default:
		result.Notification = shared.Success(fmt.Sprintf(
			"Order placed successfully with %s! Thank you for your purchase.", method.DisplayName(),
		))
		result.Redirect = shared.RedirectTo(shared.DestinationHome)
	}

	slog.Info("order completed",
		"session_id", sessionID,
		"method", method.String(),
		"amount", amount.StringFixed(2),
		"reference", result.Reference,
	)
	return result, nil
}

// CreateWidgetOrder is the gateway's order-creation callback: it re-validates
// the shipping form and hands the gateway an order descriptor. A rejection
// here cancels the widget flow without mutating checkout state.
func (uc *checkoutCommandsImpl) CreateWidgetOrder(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod) (*WidgetOrderResult, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errs.ErrCheckoutNotFound
	}

	if fieldErrs := state.Form().Validate(); len(fieldErrs) > 0 {
		return &WidgetOrderResult{FieldErrors: fieldErrs}, errs.ErrIncompleteShippingForm
	}

	gateway, ok := uc.gateways[method]
	if !ok {
		return nil, checkout.ErrUnknownPaymentMethod
	}

	snap := state.Snapshot()
	itemCount := len(snap.Items())
	orderID, err := gateway.CreateOrder(ctx, OrderDescriptor{
		Amount:      snap.Total(),
		Currency:    uc.currency,
		ItemCount:   itemCount,
		Description: fmt.Sprintf("Devion Purchase - %d items", itemCount),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	if state.Stage() == checkout.StageAwaitingPayment {
		if err := state.BeginPayment(); err == nil {
			if saveErr := uc.checkoutRepo.Save(ctx, sessionID, state); saveErr != nil {
				return nil, errs.Mark(saveErr, errs.ErrStorageOperationFailed)
			}
		}
	}

	return &WidgetOrderResult{OrderID: orderID}, nil
}

// ApproveWidgetPayment is the approval/capture callback: a confirmed capture
// flows into the same completeOrder path as the local methods.
func (uc *checkoutCommandsImpl) ApproveWidgetPayment(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod, orderID string) (*PlaceOrderResult, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errs.ErrCheckoutNotFound
	}

	gateway, ok := uc.gateways[method]
	if !ok {
		return nil, checkout.ErrUnknownPaymentMethod
	}

	capture, err := gateway.Capture(ctx, orderID)
	if err != nil {
		slog.Error("payment capture failed", "method", method.String(), "order_id", orderID, "error", err)
		return &PlaceOrderResult{
			Notification: shared.Error("Error processing your payment. Please try again."),
		}, nil
	}

	return uc.completeOrder(ctx, sessionID, state, "", capture.TransactionID, capture.PayerName)
}

// CancelWidgetPayment returns the session to method selection; the method
// stays selected and nothing is cleared.
func (uc *checkoutCommandsImpl) CancelWidgetPayment(ctx context.Context, sessionID uuid.UUID, method checkout.PaymentMethod) (*CancelResult, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errs.ErrCheckoutNotFound
	}

	slog.Info("widget payment cancelled by user", "method", method.String())
	state.CancelPayment()
	if err := uc.checkoutRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}

	return &CancelResult{
		Summary:      queries.NewOrderSummaryView(state),
		Notification: shared.Info("Payment cancelled. You can try again or choose another payment method."),
	}, nil
}

// ReportWidgetError surfaces a widget error without changing stage. A small
// set of messages indicates an ad blocker swallowing the SDK, which gets a
// specific remediation hint.
func (uc *checkoutCommandsImpl) ReportWidgetError(_ context.Context, sessionID uuid.UUID, method checkout.PaymentMethod, message string) (*WidgetErrorResult, error) {
	slog.Error("widget error reported", "session_id", sessionID, "method", method.String(), "message", message)

	lower := strings.ToLower(message)
	if strings.Contains(lower, "blocked") || strings.Contains(lower, "err_blocked_by_client") {
		return &WidgetErrorResult{
			Notification: shared.Error(fmt.Sprintf("Please disable your ad blocker to use %s.", method.DisplayName())),
		}, nil
	}
	return &WidgetErrorResult{
		Notification: shared.Error(fmt.Sprintf("There was an error with %s. Please try again.", method.DisplayName())),
	}, nil
}
