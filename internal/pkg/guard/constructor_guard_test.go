package guard_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("CostLine must be created via NewCostLine")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_EmbeddedInValueObject shows the intended usage: a value object
// built by its constructor passes, the same struct declared as a zero value fails.
func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type portCode struct {
		value string
		guard guard.ConstructorGuard
	}

	errPortCodeNotConstructed := errors.New("port code must be created via newPortCode")

	newPortCode := func(value string) (portCode, error) {
		if value == "" {
			return portCode{}, errors.New("code is required")
		}
		return portCode{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		code, err := newPortCode("AEJEA")

		require.NoError(t, err)
		require.NoError(t, code.guard.Validate(errPortCodeNotConstructed))
		assert.Equal(t, "AEJEA", code.value)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var code portCode

		assert.Equal(t, errPortCodeNotConstructed, code.guard.Validate(errPortCodeNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		code, err := newPortCode("")

		require.Error(t, err)
		assert.Error(t, code.guard.Validate(errPortCodeNotConstructed))
	})
}
