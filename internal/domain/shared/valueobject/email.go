package valueobject

import (
	"regexp"
	"strings"

	"github.com/lanchonete/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)+$`)

// Email is a value object for email addresses.
// The empty string is a valid "unset" state; any non-empty value must be a
// syntactically valid address whose domain contains at least one dot.
type Email struct {
	value string
}

// NewEmail creates an Email from raw input. Surrounding whitespace is trimmed
// and the address is lowercased before validation.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return Email{}, nil
	}
	if !emailRegex.MatchString(trimmed) {
		return Email{}, shared.NewValidationError("email", "Invalid email format")
	}
	return Email{value: trimmed}, nil
}

// EmailFromTrusted reconstructs an Email from storage without re-validating.
// Only repositories should call this.
func EmailFromTrusted(value string) Email {
	return Email{value: value}
}

// Value returns the address, empty when unset
func (e Email) Value() string {
	return e.value
}

// IsEmpty returns true for the unset state
func (e Email) IsEmpty() bool {
	return e.value == ""
}

// LocalPart returns the part before the @, empty when unset
func (e Email) LocalPart() string {
	if e.value == "" {
		return ""
	}
	return e.value[:strings.LastIndex(e.value, "@")]
}

// Domain returns the part after the @, empty when unset
func (e Email) Domain() string {
	if e.value == "" {
		return ""
	}
	return e.value[strings.LastIndex(e.value, "@")+1:]
}

// Equals returns true if both emails have the same value
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// String returns the address
func (e Email) String() string {
	return e.value
}
