package valueobject

import (
	"regexp"
	"strings"

	"github.com/lanchonete/backend/internal/domain/shared"
)

// skuRegex matches the fixed three-segment shape: alphanumeric prefix, exactly
// four digits, alphanumeric suffix (e.g. "BURG-2024-CLS").
var skuRegex = regexp.MustCompile(`^[A-Za-z0-9]+-\d{4}-[A-Za-z0-9]+$`)

// SKU is a value object for stock keeping unit codes
type SKU struct {
	value string
}

// NewSKU creates a SKU from raw input. Surrounding whitespace is trimmed and
// the code is uppercased before validation.
func NewSKU(raw string) (SKU, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return SKU{}, shared.NewValidationError("sku", "SKU cannot be empty")
	}
	if !skuRegex.MatchString(trimmed) {
		return SKU{}, shared.NewValidationError("sku",
			"SKU must match the PREFIX-NNNN-SUFFIX format (e.g. BURG-2024-CLS)")
	}
	return SKU{value: trimmed}, nil
}

// SKUFromTrusted reconstructs a SKU from storage without re-validating.
// Only repositories should call this.
func SKUFromTrusted(value string) SKU {
	return SKU{value: value}
}

// Value returns the SKU code
func (s SKU) Value() string {
	return s.value
}

// Equals returns true if both SKUs have the same code
func (s SKU) Equals(other SKU) bool {
	return s.value == other.value
}

// String returns the SKU code
func (s SKU) String() string {
	return s.value
}
