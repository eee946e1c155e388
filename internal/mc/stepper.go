package mc

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/quantsim/internal/discretize"
	"github.com/san-kum/quantsim/internal/quant"
)

// Stepper advances a single path one grid point at a time, for callers
// that own their loop (live views, debuggers). Same grid semantics as
// Generator.Run.
type Stepper struct {
	process quant.Process
	scheme  discretize.Scheme
	cfg     quant.Config
	normal  distuv.Normal
	x       quant.State
	dw      quant.State
	t       float64
	step    int
	steps   int
}

func NewStepper(p quant.Process, scheme discretize.Scheme, cfg quant.Config) (*Stepper, error) {
	s := &Stepper{
		process: p,
		scheme:  scheme,
		cfg:     cfg,
		dw:      make(quant.State, p.Factors()),
		steps:   gridSteps(cfg),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rewinds to the initial state, re-reading the live inputs and
// reseeding the draw sequence.
func (s *Stepper) Reset() error {
	x, err := s.process.InitialValues()
	if err != nil {
		return err
	}
	s.x = x
	s.t = 0
	s.step = 0
	s.normal = distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(s.cfg.Seed)}
	return nil
}

func (s *Stepper) State() quant.State { return s.x }
func (s *Stepper) Time() float64      { return s.t }
func (s *Stepper) Done() bool         { return s.step >= s.steps }

// Next advances one step; a no-op once the grid is exhausted.
func (s *Stepper) Next() error {
	if s.Done() {
		return nil
	}

	for j := range s.dw {
		s.dw[j] = s.normal.Rand()
	}

	dx, err := s.scheme.Step(s.process, s.t, s.x, s.cfg.Dt, s.dw)
	if err != nil {
		return &quant.SimulationError{Step: s.step, Time: s.t, Wrapped: err}
	}

	s.x = s.process.Apply(s.x, dx)
	s.step++
	s.t = float64(s.step) * s.cfg.Dt

	if s.cfg.ValidateState && !s.x.IsValid() {
		return &quant.SimulationError{Step: s.step, Time: s.t, Wrapped: quant.ErrInvalidState}
	}
	return nil
}
