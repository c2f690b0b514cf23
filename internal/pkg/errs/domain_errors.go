package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Cart errors
	ErrCartEmpty = errors.New("cart is empty")

	// Checkout errors
	ErrCheckoutNotFound       = errors.New("no checkout data found")
	ErrIncompleteShippingForm = errors.New("required shipping fields missing")
	ErrNoPaymentMethod        = errors.New("no payment method selected")
	ErrInvalidCardDetails     = errors.New("invalid card details")
	ErrOrderAlreadyCompleted  = errors.New("order already completed")

	// External service errors
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrLookupNotFound     = errors.New("postal code not found")
	ErrStaleLookup        = errors.New("lookup superseded by newer request")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
