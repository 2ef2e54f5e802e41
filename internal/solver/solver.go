package solver

import (
	"math"

	"projection-engine/internal/model"
)

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
	// MaxInitialRate caps the searched initial rate at 500% a year.
	MaxInitialRate = 5.0
)

// Solver finds the initial rate of a decaying schedule by bisection.
// Tolerance is absolute, in price units.
type Solver struct {
	Tolerance     float64
	MaxIterations int
	UpperBound    float64
}

func New() *Solver {
	return &Solver{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		UpperBound:    MaxInitialRate,
	}
}

var defaultSolver = New()

// InitialRate solves p with the default tolerance and iteration budget.
func InitialRate(p model.SolveParameters) (float64, error) {
	return defaultSolver.InitialRate(p)
}

// Effective returns 0 when there is no period to solve for, and the solved
// initial rate otherwise.
func (s *Solver) Effective(p model.SolveParameters) (float64, error) {
	if p.PeriodCount <= 0 {
		return 0, nil
	}
	return s.InitialRate(p)
}

// InitialRate searches [p.TerminalRate, s.UpperBound] for the initial rate
// whose schedule compounds p.InitialPrice into p.TargetPrice.
func (s *Solver) InitialRate(p model.SolveParameters) (float64, error) {
	f := func(r0 float64) float64 {
		return Compound(r0, p.InitialPrice, p.PeriodCount, p.TerminalRate) - p.TargetPrice
	}

	lower, upper := p.TerminalRate, s.UpperBound
	if lower > upper {
		return 0, model.NoSolution("terminal rate %v is above the %v ceiling", p.TerminalRate, s.UpperBound)
	}
	fLower, fUpper := f(lower), f(upper)

	if sameSign(fLower, fUpper) {
		return 0, model.NoSolution("target price %.2f is not reachable in %d periods with an initial rate in [%v, %v]",
			p.TargetPrice, p.PeriodCount, lower, upper)
	}
	if math.Abs(fLower) < s.Tolerance {
		return lower, nil
	}
	if math.Abs(fUpper) < s.Tolerance {
		return upper, nil
	}

	for i := 0; i < s.MaxIterations; i++ {
		mid := (lower + upper) / 2
		fMid := f(mid)
		if math.Abs(fMid) < s.Tolerance {
			return mid, nil
		}
		if sameSign(fLower, fMid) {
			lower, fLower = mid, fMid
		} else {
			upper = mid
		}
	}
	return 0, model.NoSolution("bisection did not converge within %d iterations", s.MaxIterations)
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
