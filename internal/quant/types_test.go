package quant

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{100.0, 0.04}, true},
		{"negative variance", State{100.0, -0.01}, true},
		{"with NaN", State{100.0, math.NaN()}, false},
		{"with +Inf", State{math.Inf(1), 0.04}, false},
		{"with -Inf", State{100.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Clone(t *testing.T) {
	orig := State{100.0, 0.04}
	c := orig.Clone()
	c[0] = 50.0

	if orig[0] != 100.0 {
		t.Errorf("Clone shares backing array: orig[0] = %f", orig[0])
	}
}

func TestState_Norm(t *testing.T) {
	tests := []struct {
		state    State
		expected float64
	}{
		{State{3, 4}, 5.0},
		{State{1, 0}, 1.0},
		{State{0, 0}, 0.0},
	}

	for _, tt := range tests {
		if got := tt.state.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestSimulationError_Unwrap(t *testing.T) {
	err := &SimulationError{Step: 3, Time: 0.25, Wrapped: ErrInvalidState}

	if !errors.Is(err, ErrInvalidState) {
		t.Error("expected errors.Is to see through SimulationError")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
