package liquidation

import "projection-engine/internal/model"

// Strategy defines the contract for all liquidation modes.
// Each strategy validates its parameters and sizes a year's sale.
type Strategy interface {
	Validate(params model.SimulationParameters) error
	// Quantity returns how much of held to sell at price. It may exceed held;
	// the simulator floors the remaining holding at 0.
	Quantity(held, price float64) float64
}
