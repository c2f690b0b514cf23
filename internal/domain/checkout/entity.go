package checkout

import (
	"errors"
	"time"

	"devion-storefront/internal/domain/cart"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cannot start checkout with an empty cart")

// Snapshot is a frozen copy of the cart taken at proceed-to-checkout time.
// After the copy the snapshot and the live cart have independent lifetimes;
// mutating one never affects the other.
type Snapshot struct {
	items     []cart.LineItem
	subtotal  decimal.Decimal
	discount  decimal.Decimal
	shipping  decimal.Decimal
	total     decimal.Decimal
	createdAt time.Time
}

func NewSnapshot(c *cart.Cart, now time.Time) (*Snapshot, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var items []cart.LineItem
	if err := copier.CopyWithOption(&items, c.Items(), copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	totals := c.Totals()
	return &Snapshot{
		items:     items,
		subtotal:  totals.Subtotal,
		discount:  totals.Discount,
		shipping:  totals.Shipping,
		total:     totals.Total,
		createdAt: now,
	}, nil
}

func ReconstructSnapshot(
	items []cart.LineItem,
	subtotal, discount, shipping, total decimal.Decimal,
	createdAt time.Time,
) *Snapshot {
	return &Snapshot{
		items:     items,
		subtotal:  subtotal,
		discount:  discount,
		shipping:  shipping,
		total:     total,
		createdAt: createdAt,
	}
}

// ApplyDiscount replaces the snapshot discount and recomputes the total
// with the invariant total = subtotal - discount + shipping.
func (s *Snapshot) ApplyDiscount(amount decimal.Decimal) {
	s.discount = amount
	s.total = s.subtotal.Sub(s.discount).Add(s.shipping)
}

// ExpiredAt reports staleness. The boundary is exclusive: a snapshot aged
// exactly ttl is still honored, one past it is not.
func (s *Snapshot) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.createdAt) > ttl
}

// Touch refreshes the snapshot timestamp; re-persisting after a coupon
// re-application restarts the expiry window.
func (s *Snapshot) Touch(now time.Time) {
	s.createdAt = now
}

func (s *Snapshot) Items() []cart.LineItem {
	out := make([]cart.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Snapshot) Subtotal() decimal.Decimal { return s.subtotal }
func (s *Snapshot) Discount() decimal.Decimal { return s.discount }
func (s *Snapshot) Shipping() decimal.Decimal { return s.shipping }
func (s *Snapshot) Total() decimal.Decimal    { return s.total }
func (s *Snapshot) CreatedAt() time.Time      { return s.createdAt }

// State is the checkout session: the frozen snapshot plus stage, selected
// payment method and the last submitted shipping form.
type State struct {
	snapshot *Snapshot
	stage    Stage
	method   PaymentMethod
	form     ShippingForm
}

func NewState(snapshot *Snapshot) *State {
	return &State{
		snapshot: snapshot,
		stage:    StageAwaitingPayment,
	}
}

func ReconstructState(snapshot *Snapshot, stage Stage, method PaymentMethod, form ShippingForm) *State {
	return &State{
		snapshot: snapshot,
		stage:    stage,
		method:   method,
		form:     form,
	}
}

func (st *State) Snapshot() *Snapshot    { return st.snapshot }
func (st *State) Stage() Stage           { return st.stage }
func (st *State) Method() PaymentMethod  { return st.method }
func (st *State) Form() ShippingForm     { return st.form }
func (st *State) HasMethod() bool        { return st.method != "" }

// SelectPaymentMethod records the method, but only once the shipping form is
// complete; an incomplete form rejects the selection with the fields to
// re-highlight.
func (st *State) SelectPaymentMethod(method PaymentMethod, form ShippingForm) ([]FieldError, error) {
	if st.stage.IsTerminal() {
		return nil, ErrInvalidStage
	}
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, ErrInvalidStage
	}
	st.method = method
	st.form = form
	return nil, nil
}

func (st *State) BeginPayment() error {
	if st.stage != StageAwaitingPayment {
		return ErrInvalidStage
	}
	st.stage = StagePaymentInProgress
	return nil
}

// Complete consumes the one-way latch. A second call, however triggered,
// fails before any side effect can run again.
func (st *State) Complete() error {
	switch st.stage {
	case StageCompleted:
		return ErrAlreadyCompleted
	case StageAbandoned:
		return ErrSessionAbandoned
	}
	st.stage = StageCompleted
	return nil
}

// CancelPayment returns the session to method selection after a widget
// cancel. The selected method is retained and nothing is cleared.
func (st *State) CancelPayment() {
	if st.stage == StagePaymentInProgress {
		st.stage = StageAwaitingPayment
	}
}

func (st *State) Abandon() {
	if !st.stage.IsTerminal() {
		st.stage = StageAbandoned
	}
}
