package valueobject

import (
	"testing"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSKU(t *testing.T) {
	t.Run("creates sku from valid code", func(t *testing.T) {
		sku, err := NewSKU("BURG-2024-CLS")
		require.NoError(t, err)
		assert.Equal(t, "BURG-2024-CLS", sku.Value())
	})

	t.Run("uppercases the code", func(t *testing.T) {
		sku, err := NewSKU("burg-2024-cls")
		require.NoError(t, err)
		assert.Equal(t, "BURG-2024-CLS", sku.Value())
	})

	t.Run("fails with empty input", func(t *testing.T) {
		_, err := NewSKU("")
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails without the three-segment shape", func(t *testing.T) {
		for _, bad := range []string{
			"INVALID",
			"ABC-123-XYZ",   // middle segment must be four digits
			"ABC-12345-XYZ", // too many digits
			"ABC-1234",      // missing suffix
			"-1234-XYZ",     // empty prefix
			"ABC-1234-",     // empty suffix
			"AB C-1234-XYZ", // no spaces
		} {
			_, err := NewSKU(bad)
			assert.Error(t, err, bad)
		}
	})

	t.Run("accepts alphanumeric prefix and suffix", func(t *testing.T) {
		for _, good := range []string{"SKU-1234-ABC", "A1-0001-9Z", "DRK-1234-AAA"} {
			_, err := NewSKU(good)
			assert.NoError(t, err, good)
		}
	})
}

func TestSKUFromTrusted(t *testing.T) {
	sku := SKUFromTrusted("BURG-2024-CLS")
	assert.Equal(t, "BURG-2024-CLS", sku.Value())
	assert.Equal(t, "BURG-2024-CLS", sku.String())
}

func TestSKUEquals(t *testing.T) {
	a, err := NewSKU("abc-1234-xyz")
	require.NoError(t, err)
	b, err := NewSKU("ABC-1234-XYZ")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}
