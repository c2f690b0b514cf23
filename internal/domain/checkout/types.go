package checkout

import "errors"

var (
	ErrInvalidStage         = errors.New("invalid checkout stage transition")
	ErrAlreadyCompleted     = errors.New("checkout already completed")
	ErrSessionAbandoned     = errors.New("checkout session abandoned")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Stage is the checkout session lifecycle. Completed and Abandoned are
// terminal; Completed is reached through a one-way latch so a rapid
// double-submit cannot finalize the same order twice.
type Stage string

const (
	StageUninitialized     Stage = "uninitialized"
	StageAwaitingPayment   Stage = "awaiting_payment_method"
	StagePaymentInProgress Stage = "payment_in_progress"
	StageCompleted         Stage = "completed"
	StageAbandoned         Stage = "abandoned"
)

func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageAbandoned
}

func (s Stage) String() string {
	return string(s)
}

type PaymentMethod string

func (m PaymentMethod) String() string {
	return string(m)
}

const (
	MethodCard        PaymentMethod = "card"
	MethodPayPal      PaymentMethod = "paypal"
	MethodMercadoPago PaymentMethod = "mercadopago"
	MethodOxxo        PaymentMethod = "oxxo"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCard, MethodPayPal, MethodMercadoPago, MethodOxxo:
		return PaymentMethod(s), nil
	}
	return "", ErrUnknownPaymentMethod
}

// DisplayName is the label carried on confirmations ("Credit Card", etc).
func (m PaymentMethod) DisplayName() string {
	switch m {
	case MethodCard:
		return "Credit Card"
	case MethodPayPal:
		return "PayPal"
	case MethodMercadoPago:
		return "Mercado Pago"
	case MethodOxxo:
		return "Oxxo Pay"
	}
	return string(m)
}

// IsWidget reports whether completion is driven by an embedded gateway
// widget rather than the local place-order path.
func (m PaymentMethod) IsWidget() bool {
	return m == MethodPayPal || m == MethodMercadoPago
}
