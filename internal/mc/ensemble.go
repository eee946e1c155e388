package mc

import (
	"context"
	"sync"

	"github.com/san-kum/quantsim/internal/discretize"
	"github.com/san-kum/quantsim/internal/quant"
)

// Ensemble runs many independent paths of the same process in parallel.
// Path i uses seed seedStart+i, so runs are reproducible and paths are
// decorrelated. The process is evaluated concurrently read-only, which is
// safe as long as no input is rebound during the run.
type Ensemble struct {
	process   quant.Process
	scheme    discretize.Scheme
	numPaths  int
	seedStart uint64
	metrics   func() []quant.Metric
}

func NewEnsemble(p quant.Process, scheme discretize.Scheme, numPaths int, seedStart uint64) *Ensemble {
	return &Ensemble{
		process:   p,
		scheme:    scheme,
		numPaths:  numPaths,
		seedStart: seedStart,
	}
}

// SetMetricFactory installs a factory producing a fresh metric set per
// path, keeping accumulation goroutine-local.
func (e *Ensemble) SetMetricFactory(f func() []quant.Metric) {
	e.metrics = f
}

func (e *Ensemble) Run(ctx context.Context, cfg quant.Config) ([]*quant.Result, error) {
	results := make([]*quant.Result, e.numPaths)
	errs := make([]error, e.numPaths)

	var wg sync.WaitGroup
	for i := 0; i < e.numPaths; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + uint64(idx)

			gen := NewGenerator(e.process, e.scheme)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					gen.AddMetric(m)
				}
			}

			results[idx], errs[idx] = gen.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
