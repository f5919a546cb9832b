package guard_test

import (
	"errors"
	"testing"

	"shipledger/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("invoice not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_UsageInValueObject(t *testing.T) {
	type money struct {
		amount float64
		guard  guard.ConstructorGuard
	}

	errMoneyNotConstructed := errors.New("money must be created via newMoney")

	newMoney := func(amount float64) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		return money{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		m, err := newMoney(125.50)
		require.NoError(t, err)
		require.NoError(t, m.guard.Validate(errMoneyNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var m money
		err := m.guard.Validate(errMoneyNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errMoneyNotConstructed, err)
	})
}
