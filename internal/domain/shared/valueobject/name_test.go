package valueobject

import (
	"strings"
	"testing"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	t.Run("creates name from valid input", func(t *testing.T) {
		name, err := NewName("John")
		require.NoError(t, err)
		assert.Equal(t, "John", name.Value())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := NewName("  Jane  ")
		require.NoError(t, err)
		assert.Equal(t, "Jane", name.Value())
	})

	t.Run("title-cases the result", func(t *testing.T) {
		name, err := NewName("john doe")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", name.Value())
	})

	t.Run("fails with empty input", func(t *testing.T) {
		_, err := NewName("")
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with whitespace-only input", func(t *testing.T) {
		_, err := NewName("   ")
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails when input exceeds the maximum length", func(t *testing.T) {
		_, err := NewName(strings.Repeat("a", MaxNameLength()+1))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("accepts input of exactly the maximum length", func(t *testing.T) {
		name, err := NewName(strings.Repeat("a", MaxNameLength()))
		require.NoError(t, err)
		assert.Len(t, name.Value(), MaxNameLength())
	})
}

func TestSetMaxNameLength(t *testing.T) {
	t.Cleanup(func() { SetMaxNameLength(DefaultMaxNameLength) })

	SetMaxNameLength(5)
	_, err := NewName("toolongname")
	assert.Error(t, err)

	name, err := NewName("short")
	require.NoError(t, err)
	assert.Equal(t, "Short", name.Value())

	// Values below 1 are ignored
	SetMaxNameLength(0)
	assert.Equal(t, 5, MaxNameLength())
}

func TestNameFromTrusted(t *testing.T) {
	name := NameFromTrusted("Already Normalized")
	assert.Equal(t, "Already Normalized", name.Value())
}

func TestNameEquals(t *testing.T) {
	a, err := NewName("john")
	require.NoError(t, err)
	b, err := NewName("John")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
	assert.Equal(t, "John", a.String())
}
