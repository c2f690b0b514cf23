package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCode = errors.New("invalid coupon code")

type effectKind int

const (
	effectFlat effectKind = iota
	effectWaiveShipping
)

type effect struct {
	kind   effectKind
	amount decimal.Decimal
}

// Engine evaluates coupon codes against an order. The registry is static and
// uses flat currency amounts; FREESHIP discounts exactly the shipping fee
// passed at evaluation time.
type Engine struct {
	registry map[string]effect
}

func NewEngine() *Engine {
	return &Engine{
		registry: map[string]effect{
			"WELCOME10": {kind: effectFlat, amount: decimal.RequireFromString("10.00")},
			"SAVE20":    {kind: effectFlat, amount: decimal.RequireFromString("20.00")},
			"FREESHIP":  {kind: effectWaiveShipping},
		},
	}
}

// Normalize upper-cases and trims a raw code. Lookup is exact after
// normalization; there are no partial matches.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate returns the flat discount amount for a code, or ErrInvalidCode.
// The subtotal is accepted for future percentage effects but flat amounts are
// not capped against it: a discount may exceed the subtotal.
func (e *Engine) Evaluate(code string, subtotal, shippingFee decimal.Decimal) (decimal.Decimal, error) {
	eff, ok := e.registry[Normalize(code)]
	if !ok {
		return decimal.Zero, ErrInvalidCode
	}
	switch eff.kind {
	case effectWaiveShipping:
		return shippingFee, nil
	default:
		return eff.amount, nil
	}
}
