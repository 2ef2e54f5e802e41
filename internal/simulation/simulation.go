package simulation

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"projection-engine/internal/liquidation"
	"projection-engine/internal/model"
	"projection-engine/internal/solver"
)

// quantityPlaces is the precision of asset quantities in records.
const quantityPlaces = 8

type Inputs struct {
	AnchorYear   int
	AnchorPrice  float64
	TargetYear   int
	HorizonYear  int
	InitialRate  float64
	TerminalRate float64
	Params       model.SimulationParameters
}

// PeriodCount is the length of the interpolated part of the schedule.
func (in Inputs) PeriodCount() int {
	return in.TargetYear - in.AnchorYear
}

// Validate reports an INVALID_INPUT error for inputs no run can start from.
func (in Inputs) Validate() error {
	if err := in.Params.Validate(); err != nil {
		return err
	}
	if in.HorizonYear < in.AnchorYear {
		return model.InvalidInput("horizon year %d is before anchor year %d", in.HorizonYear, in.AnchorYear)
	}
	if !(in.AnchorPrice > 0) || math.IsInf(in.AnchorPrice, 0) {
		return model.InvalidInput("anchor price must be a positive number, got %v", in.AnchorPrice)
	}
	if !(in.TerminalRate > -1) || math.IsInf(in.TerminalRate, 0) {
		return model.InvalidInput("terminal rate must be above -1, got %v", in.TerminalRate)
	}
	if math.IsNaN(in.InitialRate) || math.IsInf(in.InitialRate, 0) {
		return model.InvalidInput("initial rate must be a finite number")
	}
	return nil
}

type Result struct {
	Records []model.YearRecord `json:"records"`
	Summary model.Summary      `json:"summary"`
}

// Simulate walks every year from in.AnchorYear to in.HorizonYear, growing the
// price along the schedule and liquidating the holding once the start year
// is reached. Each call builds its own ledger and summary.
func Simulate(in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	strategy, err := liquidation.For(in.Params)
	if err != nil {
		return nil, err
	}

	periods := in.PeriodCount()
	checkpoints := Checkpoints(in.AnchorYear, in.HorizonYear)
	isCheckpoint := make(map[int]bool, len(checkpoints))
	for _, y := range checkpoints {
		isCheckpoint[y] = true
	}

	res := &Result{
		Records: make([]model.YearRecord, 0, in.HorizonYear-in.AnchorYear+1),
		Summary: make(model.Summary, len(checkpoints)),
	}

	held := in.Params.HoldingQuantity
	price := in.AnchorPrice
	start := in.Params.LiquidationStartYear

	// Running totals; period ones reset after every checkpoint.
	var totalValue, periodValue float64
	var periodSales []float64

	for year := in.AnchorYear; year <= in.HorizonYear; year++ {
		var rate float64
		switch {
		case year == in.AnchorYear:
			price = in.AnchorPrice
		case year <= in.TargetYear:
			rate = solver.Rate(in.InitialRate, in.TerminalRate, year-(in.AnchorYear+1), periods)
			price *= 1 + rate
		default:
			rate = in.TerminalRate
			price *= 1 + rate
		}

		var sold, soldValue float64
		if start != nil && year >= *start {
			sold = strategy.Quantity(held, price)
			soldValue = sold * price
			periodSales = append(periodSales, soldValue)
		}

		held = math.Max(held-sold, 0)
		heldValue := held * price
		totalValue += soldValue
		periodValue += soldValue

		rec := model.YearRecord{
			Year:               year,
			Price:              price,
			HoldingAfter:       round(held, quantityPlaces),
			HoldingValue:       heldValue,
			QuantityLiquidated: round(sold, quantityPlaces),
			LiquidationValue:   soldValue,
		}
		if year != in.AnchorYear {
			pct := rate * 100
			rec.GrowthRatePct = &pct
		}
		res.Records = append(res.Records, rec)

		if isCheckpoint[year] {
			res.Summary[year] = model.PeriodSummary{
				Year:                          year,
				HoldingAfter:                  round(held, quantityPlaces),
				HoldingValue:                  heldValue,
				CumulativeLiquidationValue:    totalValue,
				Price:                         price,
				AverageAnnualLiquidationValue: average(periodSales),
				PeriodLiquidationValue:        periodValue,
			}
			periodValue = 0
			periodSales = periodSales[:0]
		}
	}

	return res, nil
}

// average is the mean liquidation of the years in which a sale was
// attempted, including those that sold nothing.
func average(sales []float64) float64 {
	mean, err := stats.Mean(sales)
	if err != nil {
		return 0
	}
	return mean
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
