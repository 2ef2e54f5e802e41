package liquidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projection-engine/internal/model"
)

func TestExpenseCoversExactly(t *testing.T) {
	s, err := For(model.SimulationParameters{AnnualExpense: 50000})
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Quantity(2, 100000))
}

func TestExpenseCappedAtHolding(t *testing.T) {
	s, err := For(model.SimulationParameters{AnnualExpense: 500000})
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Quantity(1, 100000))
	assert.Equal(t, 0.0, s.Quantity(0, 100000))
}

func TestPercentage(t *testing.T) {
	s, err := For(model.SimulationParameters{UsePercentageMode: true, LiquidationFraction: 0.05, AnnualExpense: 1e9})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, s.Quantity(2, 100000), 1e-15)
	assert.IsType(t, &PercentageStrategy{}, s)
}

func TestForRejectsInvalid(t *testing.T) {
	_, err := For(model.SimulationParameters{UsePercentageMode: true, LiquidationFraction: 1.5})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = For(model.SimulationParameters{AnnualExpense: -1})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestGet(t *testing.T) {
	_, ok := Get("barter", model.SimulationParameters{})
	assert.False(t, ok)

	s, ok := Get(ModeExpense, model.SimulationParameters{AnnualExpense: 10})
	require.True(t, ok)
	assert.Equal(t, &ExpenseStrategy{AnnualExpense: 10}, s)
}
