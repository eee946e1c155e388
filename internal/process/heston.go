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

// Heston is the square-root stochastic volatility process
//
//	dS = (r - q - v/2) S dt + sqrt(v) S dW1
//	dv = kappa (theta - v) dt + sigma sqrt(v) dW2
//	corr(dW1, dW2) = rho
//
// with state [price, variance]. All parameters are read fresh from live
// quote handles at every evaluation, so rebinding or mutating any of them
// takes effect without reconstructing the process. The process registers
// itself as an observer of every input and forwards their notifications
// to its own observers; call Close to deregister.
type Heston struct {
	quant.Observable

	riskFree *curve.Handle
	dividend *curve.Handle
	s0       *quote.Handle
	v0       *quote.Handle
	kappa    *quote.Handle
	theta    *quote.Handle
	sigma    *quote.Handle
	rho      *quote.Handle
}

// NewHeston builds the process from curve handles, a spot handle and the
// five scalar parameters. The scalars are wrapped in fresh relinkable
// quotes so each can later be rebound independently. Parameter values are
// not validated here; that is a policy decision for calibration layers.
func NewHeston(riskFree, dividend *curve.Handle, s0 *quote.Handle, v0, kappa, theta, sigma, rho float64) *Heston {
	h := &Heston{
		riskFree: riskFree,
		dividend: dividend,
		s0:       s0,
		v0:       quote.NewHandle(quote.NewSimpleQuote(v0)),
		kappa:    quote.NewHandle(quote.NewSimpleQuote(kappa)),
		theta:    quote.NewHandle(quote.NewSimpleQuote(theta)),
		sigma:    quote.NewHandle(quote.NewSimpleQuote(sigma)),
		rho:      quote.NewHandle(quote.NewSimpleQuote(rho)),
	}

	h.riskFree.Attach(h)
	h.dividend.Attach(h)
	h.s0.Attach(h)
	h.v0.Attach(h)
	h.kappa.Attach(h)
	h.theta.Attach(h)
	h.sigma.Attach(h)
	h.rho.Attach(h)

	return h
}

// Update implements quant.Observer; input changes propagate transitively
// to observers of the process.
func (h *Heston) Update() {
	h.Notify()
}

// Close detaches the process from all of its inputs.
func (h *Heston) Close() {
	h.riskFree.Detach(h)
	h.dividend.Detach(h)
	h.s0.Detach(h)
	h.v0.Detach(h)
	h.kappa.Detach(h)
	h.theta.Detach(h)
	h.sigma.Detach(h)
	h.rho.Detach(h)
}

func (h *Heston) Size() int    { return 2 }
func (h *Heston) Factors() int { return 2 }

func (h *Heston) InitialValues() (quant.State, error) {
	s, err := h.s0.Value()
	if err != nil {
		return nil, fmt.Errorf("heston: initial values: %w", err)
	}
	v, err := h.v0.Value()
	if err != nil {
		return nil, fmt.Errorf("heston: initial values: %w", err)
	}
	return quant.State{s, v}, nil
}

func (h *Heston) Drift(t float64, x quant.State) (quant.State, error) {
	if len(x) != 2 {
		return nil, fmt.Errorf("heston: drift: state length %d: %w", len(x), quant.ErrDimensionMismatch)
	}

	vol := 0.0
	if x[1] > 0 {
		vol = math.Sqrt(x[1])
	}

	r, err := h.riskFree.ForwardRate(t, t)
	if err != nil {
		return nil, fmt.Errorf("heston: drift: risk-free rate: %w", err)
	}
	q, err := h.dividend.ForwardRate(t, t)
	if err != nil {
		return nil, fmt.Errorf("heston: drift: dividend yield: %w", err)
	}
	kappa, err := h.kappa.Value()
	if err != nil {
		return nil, fmt.Errorf("heston: drift: kappa: %w", err)
	}
	theta, err := h.theta.Value()
	if err != nil {
		return nil, fmt.Errorf("heston: drift: theta: %w", err)
	}

	// Full truncation: the variance is floored before squaring, while the
	// raw state stays untouched. Flooring at read time rather than at
	// update time produces the smallest discretization bias; see Lord,
	// Koekkoek and van Dijk, "A comparison of biased simulation schemes
	// for stochastic volatility models" (2006).
	return quant.State{
		r - q - 0.5*vol*vol,
		kappa * (theta - vol*vol),
	}, nil
}

func (h *Heston) Diffusion(t float64, x quant.State) (*mat.Dense, error) {
	if len(x) != 2 {
		return nil, fmt.Errorf("heston: diffusion: state length %d: %w", len(x), quant.ErrDimensionMismatch)
	}

	rho, err := h.rho.Value()
	if err != nil {
		return nil, fmt.Errorf("heston: diffusion: rho: %w", err)
	}
	sigma, err := h.sigma.Value()
	if err != nil {
		return nil, fmt.Errorf("heston: diffusion: sigma: %w", err)
	}

	sigma1 := 0.0
	if x[1] > 0 {
		sigma1 = math.Sqrt(x[1])
	}
	sigma2 := sigma * sigma1

	// Closed-form square root of the 2x2 correlation structure
	//   |  1   rho |        |  1          0       |
	//   | rho   1  |   ->   | rho   sqrt(1-rho^2) |
	// scaled by the factor vols. Exact for any rho in [-1, 1]; no general
	// matrix square root needed.
	return mat.NewDense(2, 2, []float64{
		sigma1, 0,
		rho * sigma2, math.Sqrt(1-rho*rho) * sigma2,
	}), nil
}

// Apply moves the price multiplicatively on the log increment and the
// variance additively. The variance component may go negative here; it is
// floored at the next Drift/Diffusion evaluation, not at update time.
func (h *Heston) Apply(x0, dx quant.State) quant.State {
	return quant.State{
		x0[0] * math.Exp(dx[0]),
		x0[1] + dx[1],
	}
}

// Time maps a calendar date to a year fraction under the risk-free
// curve's day counter, anchored at its reference date.
func (h *Heston) Time(d time.Time) (float64, error) {
	ref, err := h.riskFree.ReferenceDate()
	if err != nil {
		return 0, fmt.Errorf("heston: time: %w", err)
	}
	dc, err := h.riskFree.DayCounter()
	if err != nil {
		return 0, fmt.Errorf("heston: time: %w", err)
	}
	return dc.YearFraction(ref, d), nil
}

// Rebindable parameter accessors. Each returns the live handle, not a
// snapshot, so callers can relink any single input.

func (h *Heston) RiskFree() *curve.Handle { return h.riskFree }
func (h *Heston) Dividend() *curve.Handle { return h.dividend }
func (h *Heston) S0() *quote.Handle       { return h.s0 }
func (h *Heston) V0() *quote.Handle       { return h.v0 }
func (h *Heston) Kappa() *quote.Handle    { return h.kappa }
func (h *Heston) Theta() *quote.Handle    { return h.theta }
func (h *Heston) Sigma() *quote.Handle    { return h.sigma }
func (h *Heston) Rho() *quote.Handle      { return h.rho }
