package quant

import (
	"errors"
	"fmt"
)

// Domain errors for process evaluation and simulation.
var (
	// ErrUninitializedQuote indicates a read of a quote with no value set.
	ErrUninitializedQuote = errors.New("quant: quote value not set")

	// ErrEmptyHandle indicates a read through a handle that is not linked
	// to any source.
	ErrEmptyHandle = errors.New("quant: handle not linked")

	// ErrDimensionMismatch indicates a state or increment vector whose
	// length does not match the process.
	ErrDimensionMismatch = errors.New("quant: dimension mismatch between state and process")

	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("quant: invalid state (NaN or Inf detected)")

	// ErrNonPositiveStep indicates a zero or negative time step.
	ErrNonPositiveStep = errors.New("quant: time step must be positive")
)

// SimulationError wraps an error with the grid position it occurred at.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
