package curve

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/san-kum/quantsim/internal/quant"
)

// ZeroCurve interpolates continuously-compounded zero rates between nodes,
// linear in the zero rate (log-linear in the discount factor), with flat
// extrapolation beyond the last node.
type ZeroCurve struct {
	quant.Observable

	reference time.Time
	dc        DayCounter
	times     []float64
	zeros     []float64
}

// NewZeroCurve builds a zero curve from node maturities (year fractions
// from reference) and zero rates. Nodes must be strictly increasing and
// non-negative.
func NewZeroCurve(reference time.Time, times, zeros []float64, dc DayCounter) (*ZeroCurve, error) {
	if len(times) == 0 || len(times) != len(zeros) {
		return nil, fmt.Errorf("zero curve: need matching non-empty times and zeros, got %d and %d", len(times), len(zeros))
	}
	if times[0] < 0 {
		return nil, fmt.Errorf("zero curve: negative node time %f", times[0])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("zero curve: node times not strictly increasing at index %d", i)
		}
	}

	c := &ZeroCurve{
		reference: reference,
		dc:        dc,
		times:     append([]float64(nil), times...),
		zeros:     append([]float64(nil), zeros...),
	}
	if c.times[0] > 0 {
		// Anchor at t=0 with the first node's rate so short-end reads
		// extrapolate flat.
		c.times = append([]float64{0}, c.times...)
		c.zeros = append([]float64{zeros[0]}, c.zeros...)
	}
	return c, nil
}

func (c *ZeroCurve) ReferenceDate() time.Time { return c.reference }
func (c *ZeroCurve) DayCounter() DayCounter   { return c.dc }

func (c *ZeroCurve) ZeroRate(t float64) (float64, error) {
	if t < 0 {
		return 0, fmt.Errorf("zero curve: negative time %f", t)
	}
	last := len(c.times) - 1
	if t >= c.times[last] {
		return c.zeros[last], nil
	}

	// First node with time >= t.
	i := sort.SearchFloat64s(c.times, t)
	if c.times[i] == t {
		return c.zeros[i], nil
	}
	t0, t1 := c.times[i-1], c.times[i]
	z0, z1 := c.zeros[i-1], c.zeros[i]
	w := (t - t0) / (t1 - t0)
	return z0 + w*(z1-z0), nil
}

func (c *ZeroCurve) Discount(t float64) (float64, error) {
	z, err := c.ZeroRate(t)
	if err != nil {
		return 0, err
	}
	return math.Exp(-z * t), nil
}

func (c *ZeroCurve) ForwardRate(t1, t2 float64) (float64, error) {
	if t2 < t1 {
		return 0, fmt.Errorf("zero curve: decreasing interval [%f, %f]", t1, t2)
	}
	if t2-t1 < 1e-12 {
		t2 = t1 + instFwdDt
	}
	z1, err := c.ZeroRate(t1)
	if err != nil {
		return 0, err
	}
	z2, err := c.ZeroRate(t2)
	if err != nil {
		return 0, err
	}
	return (z2*t2 - z1*t1) / (t2 - t1), nil
}
