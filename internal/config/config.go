package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"projection-engine/internal/engine"
	"projection-engine/internal/solver"
)

type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	PredictionsPath string `env:"PREDICTIONS_PATH"`
	PredictionsURL  string `env:"PREDICTIONS_URL"`
	Env             string `env:"PROJECTION_ENV" envDefault:"prod"`

	AnchorYear   int     `env:"ANCHOR_YEAR" envDefault:"2024"`
	AnchorPrice  float64 `env:"ANCHOR_PRICE" envDefault:"65000"`
	HorizonYear  int     `env:"HORIZON_YEAR" envDefault:"2090"`
	TerminalRate float64 `env:"TERMINAL_RATE" envDefault:"0.15"`

	SolverTolerance     float64 `env:"SOLVER_TOLERANCE" envDefault:"1e-6"`
	SolverMaxIterations int     `env:"SOLVER_MAX_ITERATIONS" envDefault:"1000"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HorizonYear < c.AnchorYear {
		return fmt.Errorf("HORIZON_YEAR %d is before ANCHOR_YEAR %d", c.HorizonYear, c.AnchorYear)
	}
	if c.AnchorPrice <= 0 {
		return fmt.Errorf("ANCHOR_PRICE must be positive, got %v", c.AnchorPrice)
	}
	if c.TerminalRate <= -1 {
		return fmt.Errorf("TERMINAL_RATE must be above -1, got %v", c.TerminalRate)
	}
	if c.SolverTolerance <= 0 {
		return fmt.Errorf("SOLVER_TOLERANCE must be positive, got %v", c.SolverTolerance)
	}
	if c.SolverMaxIterations <= 0 {
		return fmt.Errorf("SOLVER_MAX_ITERATIONS must be positive, got %d", c.SolverMaxIterations)
	}
	return nil
}

func (c *Config) Defaults() engine.Defaults {
	return engine.Defaults{
		AnchorYear:   c.AnchorYear,
		AnchorPrice:  c.AnchorPrice,
		HorizonYear:  c.HorizonYear,
		TerminalRate: c.TerminalRate,
	}
}

func (c *Config) Solver() *solver.Solver {
	s := solver.New()
	s.Tolerance = c.SolverTolerance
	s.MaxIterations = c.SolverMaxIterations
	return s
}
