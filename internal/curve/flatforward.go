package curve

import (
	"math"
	"time"

	"github.com/san-kum/quantsim/internal/quant"
	"github.com/san-kum/quantsim/internal/quote"
)

// FlatForward is a constant continuously-compounded rate curve. The rate
// sits behind a quote handle, so rebinding or mutating the rate quote
// propagates to anything observing the curve.
type FlatForward struct {
	quant.Observable

	reference time.Time
	dc        DayCounter
	rate      *quote.Handle
}

// NewFlatForward builds a flat curve from a plain rate, wrapped internally
// in a fresh relinkable quote.
func NewFlatForward(reference time.Time, rate float64, dc DayCounter) *FlatForward {
	return NewFlatForwardFromHandle(reference, quote.NewHandle(quote.NewSimpleQuote(rate)), dc)
}

// NewFlatForwardFromHandle builds a flat curve reading its rate through h.
func NewFlatForwardFromHandle(reference time.Time, h *quote.Handle, dc DayCounter) *FlatForward {
	f := &FlatForward{reference: reference, dc: dc, rate: h}
	h.Attach(f)
	return f
}

// Update implements quant.Observer; rate changes propagate to curve
// observers.
func (f *FlatForward) Update() {
	f.Notify()
}

func (f *FlatForward) ReferenceDate() time.Time { return f.reference }
func (f *FlatForward) DayCounter() DayCounter   { return f.dc }

// Rate returns the rebindable rate handle.
func (f *FlatForward) Rate() *quote.Handle { return f.rate }

func (f *FlatForward) ForwardRate(t1, t2 float64) (float64, error) {
	return f.rate.Value()
}

func (f *FlatForward) ZeroRate(t float64) (float64, error) {
	return f.rate.Value()
}

func (f *FlatForward) Discount(t float64) (float64, error) {
	r, err := f.rate.Value()
	if err != nil {
		return 0, err
	}
	return math.Exp(-r * t), nil
}
