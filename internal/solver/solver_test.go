package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projection-engine/internal/model"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		r0      float64
		n       int
		periods int
		want    float64
	}{
		{"first period is r0", 0.8, 0, 5, 0.8},
		{"last period is terminal", 0.8, 4, 5, 0.15},
		{"midpoint", 0.8, 2, 5, 0.475},
		{"single period uses terminal", 0.8, 0, 1, 0.15},
		{"empty schedule", 0.8, 0, 0, 0},
		{"negative schedule", 0.8, 0, -3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Rate(tc.r0, 0.15, tc.n, tc.periods), 1e-12)
		})
	}
}

func TestCompound(t *testing.T) {
	assert.Equal(t, 65000.0, Compound(0.5, 65000, 0, 0.15))
	assert.InDelta(t, 65000*1.15, Compound(0.5, 65000, 1, 0.15), 1e-9)
	assert.InDelta(t, 100*1.5*1.25*1.0, Compound(0.5, 100, 3, 0.0), 1e-9)
}

func TestInitialRateRoundTrip(t *testing.T) {
	tests := []model.SolveParameters{
		{InitialPrice: 65000, TargetPrice: 1000000, PeriodCount: 6, TerminalRate: 0.15},
		{InitialPrice: 65000, TargetPrice: 5000000, PeriodCount: 16, TerminalRate: 0.15},
		{InitialPrice: 65000, TargetPrice: 13000000, PeriodCount: 21, TerminalRate: 0.15},
		{InitialPrice: 100, TargetPrice: 150, PeriodCount: 2, TerminalRate: 0.05},
		{InitialPrice: 65000, TargetPrice: 70000, PeriodCount: 10, TerminalRate: -0.02},
	}
	for _, p := range tests {
		r0, err := InitialRate(p)
		require.NoError(t, err, "%+v", p)
		assert.GreaterOrEqual(t, r0, p.TerminalRate)
		assert.LessOrEqual(t, r0, MaxInitialRate)
		got := Compound(r0, p.InitialPrice, p.PeriodCount, p.TerminalRate)
		assert.InDelta(t, p.TargetPrice, got, DefaultTolerance, "%+v", p)
	}
}

func TestInitialRateMonotonic(t *testing.T) {
	prev := -1.0
	for _, target := range []float64{200000, 400000, 800000, 1000000, 2500000, 10000000} {
		r0, err := InitialRate(model.SolveParameters{InitialPrice: 65000, TargetPrice: target, PeriodCount: 6, TerminalRate: 0.15})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r0, prev, "target %v", target)
		prev = r0
	}
}

func TestInitialRateNoSolution(t *testing.T) {
	tests := []struct {
		name string
		p    model.SolveParameters
	}{
		{"target below terminal growth", model.SolveParameters{InitialPrice: 65000, TargetPrice: 50000, PeriodCount: 10, TerminalRate: 0.15}},
		{"target beyond ceiling", model.SolveParameters{InitialPrice: 65000, TargetPrice: 1e15, PeriodCount: 2, TerminalRate: 0.15}},
		{"single period off the terminal rate", model.SolveParameters{InitialPrice: 100, TargetPrice: 200, PeriodCount: 1, TerminalRate: 0.15}},
		{"terminal rate above ceiling", model.SolveParameters{InitialPrice: 100, TargetPrice: 200, PeriodCount: 4, TerminalRate: 6}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := InitialRate(tc.p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrNoSolution), "got %v", err)
		})
	}
}

func TestInitialRateSinglePeriodExactTarget(t *testing.T) {
	terminal := 0.15
	target := Compound(0, 100, 1, terminal)
	r0, err := InitialRate(model.SolveParameters{InitialPrice: 100, TargetPrice: target, PeriodCount: 1, TerminalRate: terminal})
	require.NoError(t, err)
	assert.Equal(t, 0.15, r0)
}

func TestInitialRateIterationBudget(t *testing.T) {
	s := New()
	s.MaxIterations = 3
	_, err := s.InitialRate(model.SolveParameters{InitialPrice: 65000, TargetPrice: 1000000, PeriodCount: 6, TerminalRate: 0.15})
	require.ErrorIs(t, err, model.ErrNoSolution)

	s.MaxIterations = DefaultMaxIterations
	s.Tolerance = 1
	r0, err := s.InitialRate(model.SolveParameters{InitialPrice: 65000, TargetPrice: 1000000, PeriodCount: 6, TerminalRate: 0.15})
	require.NoError(t, err)
	assert.InDelta(t, 1000000, Compound(r0, 65000, 6, 0.15), 1)
}

func TestEffectiveSkipsEmptySchedule(t *testing.T) {
	for _, periods := range []int{0, -1, -6} {
		// An unreachable target would fail if the solver ran.
		r0, err := New().Effective(model.SolveParameters{InitialPrice: 65000, TargetPrice: 1, PeriodCount: periods, TerminalRate: 0.15})
		require.NoError(t, err)
		assert.Zero(t, r0)
	}
}
