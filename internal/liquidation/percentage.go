package liquidation

import "projection-engine/internal/model"

// PercentageStrategy sells a fixed fraction of the current holding every year.
type PercentageStrategy struct {
	Fraction float64
}

func (s *PercentageStrategy) Validate(params model.SimulationParameters) error {
	if !(params.LiquidationFraction >= 0 && params.LiquidationFraction <= 1) {
		return model.InvalidInput("liquidation_fraction must be between 0 and 1, got %v", params.LiquidationFraction)
	}
	return nil
}

func (s *PercentageStrategy) Quantity(held, _ float64) float64 {
	return held * s.Fraction
}
