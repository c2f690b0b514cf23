package checkout

import (
	"crypto/rand"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError names the offending form field so the UI can re-highlight it.
// No field value is ever cleared on validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ShippingForm holds the checkout shipping fields. City and region may be
// pre-filled by the postal lookup but remain freely editable.
type ShippingForm struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// Validate reports every empty required field plus a malformed email, in
// field order, so the first error is the field to focus.
func (f ShippingForm) Validate() []FieldError {
	var errs []FieldError
	required := []struct {
		name  string
		value string
	}{
		{"firstName", f.FirstName},
		{"lastName", f.LastName},
		{"email", f.Email},
		{"address", f.Address},
		{"city", f.City},
		{"postalCode", f.PostalCode},
		{"country", f.Country},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, FieldError{Field: field.name, Message: "this field is required"})
		}
	}
	if strings.TrimSpace(f.Email) != "" && !emailRegex.MatchString(f.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "please enter a valid email address"})
	}
	return errs
}

// CardDetails are validated for format only: digit counts and token shapes.
// There is no Luhn check and no authorization; this gates the simulated
// card-completion path.
type CardDetails struct {
	Number     string
	Expiry     string
	CVV        string
	HolderName string
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

func (c CardDetails) Validate() []FieldError {
	var errs []FieldError

	number := strings.ReplaceAll(c.Number, " ", "")
	if !digitsOnly.MatchString(number) || len(number) < 15 || len(number) > 16 {
		errs = append(errs, FieldError{Field: "cardNumber", Message: "card number must be 15-16 digits"})
	}

	parts := strings.Split(c.Expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 ||
		!digitsOnly.MatchString(parts[0]) || !digitsOnly.MatchString(parts[1]) {
		errs = append(errs, FieldError{Field: "expiry", Message: "expiry must be in MM/YY format"})
	}

	if !digitsOnly.MatchString(c.CVV) || len(c.CVV) < 3 {
		errs = append(errs, FieldError{Field: "cvv", Message: "CVV must be at least 3 digits"})
	}

	if strings.TrimSpace(c.HolderName) == "" {
		errs = append(errs, FieldError{Field: "cardholderName", Message: "cardholder name is required"})
	}

	return errs
}

const referenceCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewCashReference generates the client-facing store-cash payment reference,
// e.g. "OX7K2M9QPA". Purely decorative; nothing redeems it.
func NewCashReference() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	out := make([]byte, 8)
	for i, b := range buf {
		out[i] = referenceCharset[int(b)%len(referenceCharset)]
	}
	return "OX" + string(out)
}
