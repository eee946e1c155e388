// Package discretize provides SDE discretization schemes.
//
// A [Scheme] converts drift, diffusion, a finite time step and a vector of
// standard normal draws into the discrete increment consumed by
// [quant.Process] Apply. [Euler] is the plain Euler-Maruyama scheme.
package discretize

import (
	"fmt"
	"math"

	"github.com/san-kum/quantsim/internal/quant"
)

// Scheme turns (process, t, x, dt, dw) into an SDE increment. dw holds
// one standard normal draw per Brownian factor; correlation is carried by
// the process diffusion matrix, not by the draws.
type Scheme interface {
	Step(p quant.Process, t float64, x quant.State, dt float64, dw quant.State) (quant.State, error)
}

// Euler is the Euler-Maruyama scheme: dx = mu(t,x) dt + D(t,x) dw sqrt(dt).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(p quant.Process, t float64, x quant.State, dt float64, dw quant.State) (quant.State, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("euler: dt=%f: %w", dt, quant.ErrNonPositiveStep)
	}
	if len(dw) != p.Factors() {
		return nil, fmt.Errorf("euler: %d draws for %d factors: %w", len(dw), p.Factors(), quant.ErrDimensionMismatch)
	}

	mu, err := p.Drift(t, x)
	if err != nil {
		return nil, err
	}
	d, err := p.Diffusion(t, x)
	if err != nil {
		return nil, err
	}

	sqrtDt := math.Sqrt(dt)
	dx := make(quant.State, len(x))
	for i := range dx {
		dx[i] = mu[i] * dt
		for j := 0; j < len(dw); j++ {
			dx[i] += d.At(i, j) * dw[j] * sqrtDt
		}
	}
	return dx, nil
}
