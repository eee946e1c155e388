// Package mc drives Monte-Carlo path simulation of stochastic processes.
//
// A [Generator] walks a single path over a uniform time grid, combining a
// [quant.Process] with a [discretize.Scheme] and per-step standard normal
// draws. [Ensemble] runs many paths in parallel with per-path seeds.
// The process itself never iterates over time; the loop lives here.
package mc

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/quantsim/internal/discretize"
	"github.com/san-kum/quantsim/internal/quant"
)

type Generator struct {
	process   quant.Process
	scheme    discretize.Scheme
	metrics   []quant.Metric
	observers []quant.PathObserver
	pool      *statePool
}

func NewGenerator(p quant.Process, scheme discretize.Scheme) *Generator {
	return &Generator{
		process: p,
		scheme:  scheme,
		pool:    newStatePool(p.Factors()),
	}
}

func (g *Generator) AddMetric(m quant.Metric)         { g.metrics = append(g.metrics, m) }
func (g *Generator) AddObserver(o quant.PathObserver) { g.observers = append(g.observers, o) }

func (g *Generator) validateConfig(cfg quant.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("mc: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Horizon <= 0 {
		return fmt.Errorf("mc: horizon must be positive, got %f", cfg.Horizon)
	}
	return nil
}

// Run simulates one path. The grid has Horizon/Dt steps; the state at
// every grid point, initial and terminal included, is fed to metrics and
// observers. With cfg.RecordPath the full trajectory is retained.
func (g *Generator) Run(ctx context.Context, cfg quant.Config) (*quant.Result, error) {
	if err := g.validateConfig(cfg); err != nil {
		return nil, err
	}

	x, err := g.process.InitialValues()
	if err != nil {
		return nil, err
	}

	steps := gridSteps(cfg)
	result := &quant.Result{
		Metrics: make(map[string]float64),
	}
	if cfg.RecordPath {
		result.Path = &quant.Path{
			Times:  make([]float64, 0, steps+1),
			States: make([]quant.State, 0, steps+1),
		}
	}

	for _, m := range g.metrics {
		m.Reset()
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(cfg.Seed)}
	dw := g.pool.Get()
	defer g.pool.Put(dw)

	t := 0.0
	g.record(result, cfg, x, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for j := range dw {
			dw[j] = normal.Rand()
		}

		dx, err := g.scheme.Step(g.process, t, x, cfg.Dt, dw)
		if err != nil {
			return result, &quant.SimulationError{Step: i, Time: t, Wrapped: err}
		}

		x = g.process.Apply(x, dx)
		t = float64(i+1) * cfg.Dt

		if cfg.ValidateState && !x.IsValid() {
			return result, &quant.SimulationError{Step: i, Time: t, Wrapped: quant.ErrInvalidState}
		}

		result.StepsTaken++
		g.record(result, cfg, x, t)
	}

	result.Terminal = x.Clone()
	for _, m := range g.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// gridSteps rounds Horizon/Dt to the nearest integer so that a horizon
// meant as an exact multiple of dt is not truncated by floating-point
// noise.
func gridSteps(cfg quant.Config) int {
	return int(math.Round(cfg.Horizon / cfg.Dt))
}

func (g *Generator) record(result *quant.Result, cfg quant.Config, x quant.State, t float64) {
	for _, m := range g.metrics {
		m.Observe(x, t)
	}
	for _, o := range g.observers {
		o.OnStep(x, t)
	}
	if cfg.RecordPath {
		result.Path.Times = append(result.Path.Times, t)
		result.Path.States = append(result.Path.States, x.Clone())
	}
}
