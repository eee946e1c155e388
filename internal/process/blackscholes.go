package process

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quantsim/internal/curve"
	"github.com/san-kum/quantsim/internal/quant"
	"github.com/san-kum/quantsim/internal/quote"
)

// BlackScholes is the one-factor log-normal process
//
//	dS = (r - q) S dt + sigma S dW
//
// with state [price]. Drift and diffusion are expressed for the log-price
// dynamics and Apply is the log-Euler update, matching the price
// component of the two-factor model.
type BlackScholes struct {
	quant.Observable

	riskFree *curve.Handle
	dividend *curve.Handle
	s0       *quote.Handle
	sigma    *quote.Handle
}

func NewBlackScholes(riskFree, dividend *curve.Handle, s0 *quote.Handle, sigma float64) *BlackScholes {
	b := &BlackScholes{
		riskFree: riskFree,
		dividend: dividend,
		s0:       s0,
		sigma:    quote.NewHandle(quote.NewSimpleQuote(sigma)),
	}

	b.riskFree.Attach(b)
	b.dividend.Attach(b)
	b.s0.Attach(b)
	b.sigma.Attach(b)

	return b
}

func (b *BlackScholes) Update() {
	b.Notify()
}

func (b *BlackScholes) Close() {
	b.riskFree.Detach(b)
	b.dividend.Detach(b)
	b.s0.Detach(b)
	b.sigma.Detach(b)
}

func (b *BlackScholes) Size() int    { return 1 }
func (b *BlackScholes) Factors() int { return 1 }

func (b *BlackScholes) InitialValues() (quant.State, error) {
	s, err := b.s0.Value()
	if err != nil {
		return nil, fmt.Errorf("black-scholes: initial values: %w", err)
	}
	return quant.State{s}, nil
}

func (b *BlackScholes) Drift(t float64, x quant.State) (quant.State, error) {
	if len(x) != 1 {
		return nil, fmt.Errorf("black-scholes: drift: state length %d: %w", len(x), quant.ErrDimensionMismatch)
	}

	r, err := b.riskFree.ForwardRate(t, t)
	if err != nil {
		return nil, fmt.Errorf("black-scholes: drift: risk-free rate: %w", err)
	}
	q, err := b.dividend.ForwardRate(t, t)
	if err != nil {
		return nil, fmt.Errorf("black-scholes: drift: dividend yield: %w", err)
	}
	sigma, err := b.sigma.Value()
	if err != nil {
		return nil, fmt.Errorf("black-scholes: drift: sigma: %w", err)
	}

	return quant.State{r - q - 0.5*sigma*sigma}, nil
}

func (b *BlackScholes) Diffusion(t float64, x quant.State) (*mat.Dense, error) {
	if len(x) != 1 {
		return nil, fmt.Errorf("black-scholes: diffusion: state length %d: %w", len(x), quant.ErrDimensionMismatch)
	}

	sigma, err := b.sigma.Value()
	if err != nil {
		return nil, fmt.Errorf("black-scholes: diffusion: sigma: %w", err)
	}
	return mat.NewDense(1, 1, []float64{sigma}), nil
}

func (b *BlackScholes) Apply(x0, dx quant.State) quant.State {
	return quant.State{x0[0] * math.Exp(dx[0])}
}

func (b *BlackScholes) Time(d time.Time) (float64, error) {
	ref, err := b.riskFree.ReferenceDate()
	if err != nil {
		return 0, fmt.Errorf("black-scholes: time: %w", err)
	}
	dc, err := b.riskFree.DayCounter()
	if err != nil {
		return 0, fmt.Errorf("black-scholes: time: %w", err)
	}
	return dc.YearFraction(ref, d), nil
}

func (b *BlackScholes) RiskFree() *curve.Handle { return b.riskFree }
func (b *BlackScholes) Dividend() *curve.Handle { return b.dividend }
func (b *BlackScholes) S0() *quote.Handle       { return b.s0 }
func (b *BlackScholes) Sigma() *quote.Handle    { return b.sigma }
