package quant

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// State is an ordered vector of process state components.
// For the two-factor stochastic volatility model the layout is
// [price, variance].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Process is the state-transition model of a continuous-time stochastic
// process dx = mu(t,x) dt + D(t,x) dW. It maps (t, x) to drift and
// diffusion and a base state plus SDE increment to a new state; it never
// iterates over time itself.
//
// Evaluations read live market inputs and return an error when an input
// quote or curve handle is unset.
type Process interface {
	// Size is the dimension of the state vector.
	Size() int
	// Factors is the number of independent Brownian drivers.
	Factors() int
	// InitialValues reads the starting state from the live inputs.
	InitialValues() (State, error)
	// Drift evaluates the deterministic component at (t, x).
	Drift(t float64, x State) (State, error)
	// Diffusion evaluates the Size x Factors matrix D such that D*Dᵀ is
	// the instantaneous covariance at (t, x).
	Diffusion(t float64, x State) (*mat.Dense, error)
	// Apply combines a base state with an SDE increment produced by a
	// discretization scheme.
	Apply(x0, dx State) State
	// Time maps a calendar date to the year fraction used by Drift and
	// Diffusion, anchored at the risk-free curve's reference date.
	Time(d time.Time) (float64, error)
}

// Metric accumulates a per-path statistic, observed at every grid point.
type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// PathObserver is notified at every grid point of a simulated path.
type PathObserver interface {
	OnStep(x State, t float64)
}

// Config controls a single path simulation.
type Config struct {
	Dt            float64
	Horizon       float64
	Seed          uint64
	RecordPath    bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 252.0,
		Horizon:       1.0,
		RecordPath:    true,
		ValidateState: true,
	}
}

// Path holds a realized trajectory on a uniform time grid.
type Path struct {
	Times  []float64
	States []State
}

// Component extracts one state component as a series, e.g. the price
// trace for plotting.
func (p *Path) Component(i int) []float64 {
	out := make([]float64, len(p.States))
	for k, x := range p.States {
		out[k] = x[i]
	}
	return out
}

type Result struct {
	Path       *Path
	Terminal   State
	Metrics    map[string]float64
	StepsTaken int
}
