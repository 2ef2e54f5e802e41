package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"projection-engine/internal/model"
	"projection-engine/internal/predictions"
	"projection-engine/internal/simulation"
	"projection-engine/internal/solver"
)

// Defaults fix the calendar and growth assumptions shared by every run.
type Defaults struct {
	AnchorYear   int
	AnchorPrice  float64
	HorizonYear  int
	TerminalRate float64
}

func DefaultDefaults() Defaults {
	return Defaults{
		AnchorYear:   2024,
		AnchorPrice:  65000,
		HorizonYear:  2090,
		TerminalRate: 0.15,
	}
}

type Engine struct {
	Catalog  predictions.Catalog
	Solver   *solver.Solver
	Defaults Defaults
}

func New(catalog predictions.Catalog, s *solver.Solver, d Defaults) *Engine {
	if s == nil {
		s = solver.New()
	}
	return &Engine{Catalog: catalog, Solver: s, Defaults: d}
}

// Calculation is the outcome of one solve + simulate run.
type Calculation struct {
	Prediction  model.Prediction   `json:"prediction"`
	PeriodCount int                `json:"period_count"`
	InitialRate float64            `json:"initial_rate"`
	Records     []model.YearRecord `json:"records"`
	Summary     model.Summary      `json:"summary"`
}

// Calculate solves the schedule for pred and simulates params over it.
// Inputs are validated before any work; a solver failure aborts the run
// without a ledger.
func (e *Engine) Calculate(pred model.Prediction, params model.SimulationParameters) (*Calculation, error) {
	if !(pred.TargetPrice > 0) {
		return nil, model.InvalidInput("target price must be positive, got %v", pred.TargetPrice)
	}
	in := simulation.Inputs{
		AnchorYear:   e.Defaults.AnchorYear,
		AnchorPrice:  e.Defaults.AnchorPrice,
		TargetYear:   pred.Year,
		HorizonYear:  e.Defaults.HorizonYear,
		TerminalRate: e.Defaults.TerminalRate,
		Params:       params,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r0, err := e.Solver.Effective(model.SolveParameters{
		InitialPrice: in.AnchorPrice,
		TargetPrice:  pred.TargetPrice,
		PeriodCount:  in.PeriodCount(),
		TerminalRate: in.TerminalRate,
	})
	if err != nil {
		return nil, err
	}
	in.InitialRate = r0

	res, err := simulation.Simulate(in)
	if err != nil {
		return nil, err
	}

	return &Calculation{
		Prediction:  pred,
		PeriodCount: in.PeriodCount(),
		InitialRate: r0,
		Records:     res.Records,
		Summary:     res.Summary,
	}, nil
}

// Resolve finds the prediction a request refers to: an inline target wins
// over a catalog name.
func (e *Engine) Resolve(req *model.ProjectionRequest) (model.Prediction, error) {
	if req.Target != nil {
		pred := *req.Target
		if pred.Name == "" {
			pred.Name = "custom"
		}
		return pred, nil
	}
	if req.Prediction == "" {
		return model.Prediction{}, model.InvalidInput("either prediction or target is required")
	}
	if e.Catalog == nil {
		return model.Prediction{}, model.UnknownPrediction(req.Prediction)
	}
	pred, ok := e.Catalog.Lookup(req.Prediction)
	if !ok {
		return model.Prediction{}, model.UnknownPrediction(req.Prediction)
	}
	return pred, nil
}

func (e *Engine) Process(req *model.ProjectionRequest) *model.ProjectionResponse {
	start := time.Now()

	var messages []model.CalculationMessage
	outcome := model.OutcomeSuccess
	result := model.CalculationResult{}

	calc, err := e.run(req)
	if err != nil {
		outcome = model.OutcomeFailure
		messages = append(messages, messageFor(err, len(messages)))
	} else {
		result.Prediction = &calc.Prediction
		result.PeriodCount = calc.PeriodCount
		result.InitialRate = calc.InitialRate
		result.Records = calc.Records
		result.Summary = calc.Summary
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.CalculationMessage{}
	}
	result.Messages = messages

	return &model.ProjectionResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

func (e *Engine) run(req *model.ProjectionRequest) (*Calculation, error) {
	pred, err := e.Resolve(req)
	if err != nil {
		return nil, err
	}
	return e.Calculate(pred, req.Parameters)
}

func messageFor(err error, id int) model.CalculationMessage {
	msg := model.CalculationMessage{
		ID:      id,
		Level:   model.LevelCritical,
		Code:    "CALCULATION_FAILED",
		Message: err.Error(),
	}
	var ce *model.CalculationError
	if errors.As(err, &ce) {
		msg.Code = string(ce.Kind)
		msg.Message = ce.Message
	}
	return msg
}
