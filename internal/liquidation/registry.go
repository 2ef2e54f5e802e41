package liquidation

import "projection-engine/internal/model"

const (
	ModeExpense    = "expense"
	ModePercentage = "percentage"
)

var registry = map[string]func(model.SimulationParameters) Strategy{
	ModeExpense:    newExpense,
	ModePercentage: newPercentage,
}

func newExpense(p model.SimulationParameters) Strategy {
	return &ExpenseStrategy{AnnualExpense: p.AnnualExpense}
}

func newPercentage(p model.SimulationParameters) Strategy {
	return &PercentageStrategy{Fraction: p.LiquidationFraction}
}

func Get(mode string, params model.SimulationParameters) (Strategy, bool) {
	newStrategy, ok := registry[mode]
	if !ok {
		return nil, false
	}
	return newStrategy(params), true
}

// Mode returns the registry key selected by params.
func Mode(params model.SimulationParameters) string {
	if params.UsePercentageMode {
		return ModePercentage
	}
	return ModeExpense
}

// For builds and validates the strategy selected by params.
func For(params model.SimulationParameters) (Strategy, error) {
	s, _ := Get(Mode(params), params)
	if err := s.Validate(params); err != nil {
		return nil, err
	}
	return s, nil
}
