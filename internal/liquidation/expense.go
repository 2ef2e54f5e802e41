package liquidation

import (
	"math"

	"projection-engine/internal/model"
)

// ExpenseStrategy sells just enough to cover AnnualExpense at the year's price.
type ExpenseStrategy struct {
	AnnualExpense float64
}

func (s *ExpenseStrategy) Validate(params model.SimulationParameters) error {
	if params.AnnualExpense < 0 || math.IsNaN(params.AnnualExpense) {
		return model.InvalidInput("annual_expense must be non-negative, got %v", params.AnnualExpense)
	}
	return nil
}

func (s *ExpenseStrategy) Quantity(held, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return math.Min(s.AnnualExpense/price, held)
}
