package model

import (
	"maps"
	"math"
	"slices"
)

// SolveParameters are the inputs of the rate solver. PeriodCount is the
// number of schedule periods between the anchor year and the target year.
type SolveParameters struct {
	InitialPrice float64 `json:"initial_price"`
	TargetPrice  float64 `json:"target_price"`
	PeriodCount  int     `json:"period_count"`
	TerminalRate float64 `json:"terminal_rate"`
}

// SimulationParameters describe the holding and how it is liquidated.
type SimulationParameters struct {
	HoldingQuantity      float64 `json:"holding_quantity"`
	AnnualExpense        float64 `json:"annual_expense"`
	LiquidationStartYear *int    `json:"liquidation_start_year,omitempty"`
	LiquidationFraction  float64 `json:"liquidation_fraction"`
	UsePercentageMode    bool    `json:"use_percentage_mode"`
}

// Validate reports an INVALID_INPUT error for parameters outside their domain.
func (p SimulationParameters) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"holding_quantity", p.HoldingQuantity},
		{"annual_expense", p.AnnualExpense},
		{"liquidation_fraction", p.LiquidationFraction},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return InvalidInput("%s must be a finite number", f.name)
		}
	}
	if p.HoldingQuantity < 0 {
		return InvalidInput("holding_quantity must be non-negative, got %v", p.HoldingQuantity)
	}
	if p.AnnualExpense < 0 {
		return InvalidInput("annual_expense must be non-negative, got %v", p.AnnualExpense)
	}
	if p.LiquidationFraction < 0 || p.LiquidationFraction > 1 {
		return InvalidInput("liquidation_fraction must be between 0 and 1, got %v", p.LiquidationFraction)
	}
	return nil
}

// YearRecord is one row of the yearly ledger. GrowthRatePct is nil for the
// anchor year, where growth does not apply.
type YearRecord struct {
	Year               int      `json:"year"`
	Price              float64  `json:"price"`
	GrowthRatePct      *float64 `json:"growth_rate_pct"`
	HoldingAfter       float64  `json:"holding_after"`
	HoldingValue       float64  `json:"holding_value"`
	QuantityLiquidated float64  `json:"quantity_liquidated"`
	LiquidationValue   float64  `json:"liquidation_value"`
}

// PeriodSummary snapshots the run at a checkpoint year.
type PeriodSummary struct {
	Year                          int     `json:"year"`
	HoldingAfter                  float64 `json:"holding_after"`
	HoldingValue                  float64 `json:"holding_value"`
	CumulativeLiquidationValue    float64 `json:"cumulative_liquidation_value"`
	Price                         float64 `json:"price"`
	AverageAnnualLiquidationValue float64 `json:"average_annual_liquidation_value"`
	PeriodLiquidationValue        float64 `json:"period_liquidation_value"`
}

// Summary maps checkpoint years to their snapshot.
type Summary map[int]PeriodSummary

// Years returns the checkpoint years in increasing order.
func (s Summary) Years() []int {
	return slices.Sorted(maps.Keys(s))
}
