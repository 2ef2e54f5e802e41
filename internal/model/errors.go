package model

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNoSolution        ErrorKind = "NO_SOLUTION"
	KindInvalidInput      ErrorKind = "INVALID_INPUT"
	KindUnknownPrediction ErrorKind = "UNKNOWN_PREDICTION"
)

// CalculationError is a failure of a calculation reported as kind + message.
// Two CalculationErrors match under errors.Is when their kinds are equal.
type CalculationError struct {
	Kind    ErrorKind
	Message string
}

var (
	ErrNoSolution        = &CalculationError{Kind: KindNoSolution}
	ErrInvalidInput      = &CalculationError{Kind: KindInvalidInput}
	ErrUnknownPrediction = &CalculationError{Kind: KindUnknownPrediction}
)

func (e *CalculationError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CalculationError) Is(target error) bool {
	t, ok := target.(*CalculationError)
	return ok && t.Kind == e.Kind
}

func NoSolution(format string, args ...any) error {
	return &CalculationError{Kind: KindNoSolution, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) error {
	return &CalculationError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func UnknownPrediction(name string) error {
	return &CalculationError{Kind: KindUnknownPrediction, Message: fmt.Sprintf("no prediction named %q", name)}
}

// KindOf returns the kind of a CalculationError anywhere in err's chain, or "".
func KindOf(err error) ErrorKind {
	var ce *CalculationError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
