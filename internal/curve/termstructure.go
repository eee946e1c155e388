// Package curve provides yield term structures and day-count conventions.
//
// A [TermStructure] supplies continuously-compounded rates anchored at a
// reference date; [FlatForward] and [ZeroCurve] are the two concrete
// implementations. Like quotes, term structures sit behind relinkable
// [Handle] cells so a dependent process can have its curve swapped out
// without reconstruction.
package curve

import (
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/quantsim/internal/quant"
)

// instFwdDt is the bump used to turn a degenerate [t, t] interval into a
// finite one when computing instantaneous forward rates.
const instFwdDt = 1e-4

// TermStructure supplies continuously-compounded rates as a function of
// year fractions measured from its reference date.
type TermStructure interface {
	ReferenceDate() time.Time
	DayCounter() DayCounter
	// ForwardRate returns the continuously-compounded forward rate over
	// [t1, t2]. t2 == t1 yields the instantaneous forward at t1.
	ForwardRate(t1, t2 float64) (float64, error)
	// ZeroRate returns the continuously-compounded zero rate for
	// maturity t.
	ZeroRate(t float64) (float64, error)
	// Discount returns the discount factor for maturity t.
	Discount(t float64) (float64, error)
	Attach(quant.Observer)
	Detach(quant.Observer)
}

// Handle is a relinkable indirection cell over a TermStructure, forwarding
// target notifications to its own observers.
type Handle struct {
	quant.Observable

	mu   sync.RWMutex
	link TermStructure
}

func NewHandle(ts TermStructure) *Handle {
	h := &Handle{}
	if ts != nil {
		h.Link(ts)
	}
	return h
}

// Update implements quant.Observer.
func (h *Handle) Update() {
	h.Notify()
}

// Link rebinds the handle to ts (nil unlinks) and notifies observers.
func (h *Handle) Link(ts TermStructure) {
	h.mu.Lock()
	if h.link != nil {
		h.link.Detach(h)
	}
	h.link = ts
	if ts != nil {
		ts.Attach(h)
	}
	h.mu.Unlock()

	h.Notify()
}

func (h *Handle) Empty() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.link == nil
}

func (h *Handle) CurrentLink() TermStructure {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.link
}

func (h *Handle) target() (TermStructure, error) {
	h.mu.RLock()
	link := h.link
	h.mu.RUnlock()

	if link == nil {
		return nil, fmt.Errorf("curve handle: %w", quant.ErrEmptyHandle)
	}
	return link, nil
}

func (h *Handle) ReferenceDate() (time.Time, error) {
	ts, err := h.target()
	if err != nil {
		return time.Time{}, err
	}
	return ts.ReferenceDate(), nil
}

func (h *Handle) DayCounter() (DayCounter, error) {
	ts, err := h.target()
	if err != nil {
		return "", err
	}
	return ts.DayCounter(), nil
}

func (h *Handle) ForwardRate(t1, t2 float64) (float64, error) {
	ts, err := h.target()
	if err != nil {
		return 0, err
	}
	return ts.ForwardRate(t1, t2)
}

func (h *Handle) ZeroRate(t float64) (float64, error) {
	ts, err := h.target()
	if err != nil {
		return 0, err
	}
	return ts.ZeroRate(t)
}

func (h *Handle) Discount(t float64) (float64, error) {
	ts, err := h.target()
	if err != nil {
		return 0, err
	}
	return ts.Discount(t)
}
