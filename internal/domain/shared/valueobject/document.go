package valueobject

import (
	"fmt"
	"strings"

	"github.com/lanchonete/backend/internal/domain/shared"
)

const documentLength = 11

// Document is a value object for the national tax id (CPF-style 11-digit
// number). The empty string is a valid "unset" state; any non-empty value is
// stored as bare digits and must pass the mod-11 weighted check-digit
// algorithm.
type Document struct {
	value string
}

// NewDocument creates a Document from raw input. Non-digit characters are
// stripped before validation, so formatted input like "529.982.247-25" is
// accepted.
func NewDocument(raw string) (Document, error) {
	if strings.TrimSpace(raw) == "" {
		return Document{}, nil
	}

	digits := stripNonDigits(raw)
	if len(digits) != documentLength {
		return Document{}, shared.NewValidationError("document",
			fmt.Sprintf("Document must have exactly %d digits", documentLength))
	}
	if allSameDigit(digits) {
		return Document{}, shared.NewValidationError("document", "Document cannot have all identical digits")
	}
	if !validCheckDigits(digits) {
		return Document{}, shared.NewValidationError("document", "Document check digits do not match")
	}
	return Document{value: digits}, nil
}

// DocumentFromTrusted reconstructs a Document from storage without
// re-validating. Only repositories should call this.
func DocumentFromTrusted(value string) Document {
	return Document{value: value}
}

// Value returns the bare digits, empty when unset
func (d Document) Value() string {
	return d.value
}

// IsEmpty returns true for the unset state
func (d Document) IsEmpty() bool {
	return d.value == ""
}

// Formatted renders the document as XXX.XXX.XXX-XX, empty when unset
func (d Document) Formatted() string {
	if d.value == "" {
		return ""
	}
	return fmt.Sprintf("%s.%s.%s-%s", d.value[0:3], d.value[3:6], d.value[6:9], d.value[9:11])
}

// Equals returns true if both documents have the same value
func (d Document) Equals(other Document) bool {
	return d.value == other.value
}

// String returns the bare digits
func (d Document) String() string {
	return d.value
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// validCheckDigits verifies the two trailing check digits. The first is
// computed over digits 1..9 with weights 10..2, the second over digits 1..10
// with weights 11..2; in both cases the digit is (sum*10 mod 11) mod 10.
func validCheckDigits(digits string) bool {
	return checkDigit(digits, 9) == int(digits[9]-'0') &&
		checkDigit(digits, 10) == int(digits[10]-'0')
}

func checkDigit(digits string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * (length + 1 - i)
	}
	return sum * 10 % 11 % 10
}
