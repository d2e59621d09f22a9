package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MoneyDecimalPlaces is the maximum scale accepted for monetary amounts
const MoneyDecimalPlaces = 2

// Money is a value object representing a non-negative monetary amount with at
// most two decimal places. It is immutable - all operations return new Money
// instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money from a decimal amount
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, shared.NewValidationError("amount", "Amount cannot be negative")
	}
	if amount.Exponent() < -MoneyDecimalPlaces {
		return Money{}, shared.NewValidationError("amount",
			fmt.Sprintf("Amount cannot have more than %d decimal places", MoneyDecimalPlaces))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates Money from a float64 value
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, shared.NewValidationError("amount", fmt.Sprintf("Invalid amount: %v", err))
	}
	return NewMoney(d)
}

// MoneyFromTrusted reconstructs Money from storage without re-validating.
// Only repositories should call this.
func MoneyFromTrusted(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// ZeroMoney returns a zero-value Money
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// AddAmount returns a new Money with the given decimal added, re-applying the
// precision and sign rules to the result
func (m Money) AddAmount(amount decimal.Decimal) (Money, error) {
	return NewMoney(m.amount.Add(amount))
}

// MultiplyByInt returns a new Money multiplied by an integer quantity
func (m Money) MultiplyByInt(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Equals returns true if both Money values represent the same amount
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan returns true if this Money is less than the other
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan returns true if this Money is greater than the other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// String returns the amount with two decimal places
func (m Money) String() string {
	return m.amount.StringFixed(MoneyDecimalPlaces)
}

// StringFixed returns the amount as a string with fixed decimal places
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

// Float64 returns the amount as a float64 (may lose precision)
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount.String())
}

// UnmarshalJSON implements json.Unmarshaler. Unlike NewMoney it rejects
// invalid JSON but still applies the sign and precision rules, so a Money
// decoded from an API payload satisfies the same invariants.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewMoneyFromString(s)
	if err != nil {
		return err
	}
	m.amount = parsed.amount
	return nil
}

// Value implements driver.Valuer for database storage
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner for database retrieval. Storage data is
// trusted, so no invariant check is re-run here.
func (m *Money) Scan(value any) error {
	if value == nil {
		m.amount = decimal.Zero
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}

	amount, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	m.amount = amount
	return nil
}
