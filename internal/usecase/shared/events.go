package shared

// Severity levels for the transient notification surface.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient user-facing message; the UI auto-dismisses it
// after a fixed duration.
type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func Info(msg string) *Notification    { return &Notification{Severity: SeverityInfo, Message: msg} }
func Success(msg string) *Notification { return &Notification{Severity: SeveritySuccess, Message: msg} }
func Warning(msg string) *Notification { return &Notification{Severity: SeverityWarning, Message: msg} }
func Error(msg string) *Notification   { return &Notification{Severity: SeverityError, Message: msg} }

// Redirect destinations for terminal transitions.
const (
	DestinationShop         = "shop"
	DestinationHome         = "home"
	DestinationCheckout     = "checkout"
	DestinationConfirmation = "confirmation"
)

// Redirect is a navigation side effect surfaced to the rendering layer.
// Confirmation redirects carry the §6 query contract: paymentId, payerName,
// amount (two decimals) and currency.
type Redirect struct {
	Destination string            `json:"destination"`
	Params      map[string]string `json:"params,omitempty"`
}

func RedirectTo(destination string) *Redirect {
	return &Redirect{Destination: destination}
}

func RedirectToConfirmation(paymentID, payerName, amount, currency string) *Redirect {
	return &Redirect{
		Destination: DestinationConfirmation,
		Params: map[string]string{
			"paymentId": paymentID,
			"payerName": payerName,
			"amount":    amount,
			"currency":  currency,
		},
	}
}
