package valueobject

import (
	"fmt"
	"strings"

	"github.com/lanchonete/backend/internal/domain/shared"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMaxNameLength is the maximum accepted name length unless overridden
// through configuration.
const DefaultMaxNameLength = 100

var maxNameLength = DefaultMaxNameLength

// SetMaxNameLength overrides the maximum accepted name length. Called once
// from configuration wiring at startup; values below 1 are ignored.
func SetMaxNameLength(n int) {
	if n >= 1 {
		maxNameLength = n
	}
}

// MaxNameLength returns the currently configured maximum name length
func MaxNameLength() int {
	return maxNameLength
}

// Name is a value object for person and item names.
// It is immutable and stored title-cased.
type Name struct {
	value string
}

// NewName creates a Name from raw input: trims surrounding whitespace,
// rejects blank or over-long input, and title-cases the result.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, shared.NewValidationError("name", "Name cannot be empty")
	}
	if len(trimmed) > maxNameLength {
		return Name{}, shared.NewValidationError("name",
			fmt.Sprintf("Name cannot exceed %d characters", maxNameLength))
	}
	// cases.Caser is stateful and not safe for concurrent use
	return Name{value: cases.Title(language.Und).String(trimmed)}, nil
}

// NameFromTrusted reconstructs a Name from already-normalized storage data
// without re-validating. Only repositories should call this.
func NameFromTrusted(value string) Name {
	return Name{value: value}
}

// Value returns the normalized name
func (n Name) Value() string {
	return n.value
}

// Equals returns true if both names have the same normalized value
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// String returns the normalized name
func (n Name) String() string {
	return n.value
}
