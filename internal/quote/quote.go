// Package quote provides observable market quotes and relinkable handles.
//
// A [SimpleQuote] is a named scalar that notifies registered observers on
// change; a [Handle] is an owned indirection cell over a quote that can be
// relinked to a different source without reconstructing its dependents.
package quote

import (
	"fmt"
	"sync"

	"github.com/san-kum/quantsim/internal/quant"
)

// Quote is an observable scalar market value.
type Quote interface {
	// Value returns the current value, or an error wrapping
	// quant.ErrUninitializedQuote when no value has been set.
	Value() (float64, error)
	Attach(quant.Observer)
	Detach(quant.Observer)
}

// SimpleQuote is a scalar quote backed by a plain float. The zero value
// is an unset quote.
type SimpleQuote struct {
	quant.Observable

	mu    sync.RWMutex
	value float64
	set   bool
}

// NewSimpleQuote returns a quote initialized to v.
func NewSimpleQuote(v float64) *SimpleQuote {
	return &SimpleQuote{value: v, set: true}
}

func (q *SimpleQuote) Value() (float64, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if !q.set {
		return 0, fmt.Errorf("simple quote: %w", quant.ErrUninitializedQuote)
	}
	return q.value, nil
}

func (q *SimpleQuote) IsValid() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.set
}

// SetValue updates the quote and notifies observers when the value
// actually changed.
func (q *SimpleQuote) SetValue(v float64) {
	q.mu.Lock()
	changed := !q.set || q.value != v
	q.value = v
	q.set = true
	q.mu.Unlock()

	if changed {
		q.Notify()
	}
}

// Reset clears the value, returning the quote to the unset state.
func (q *SimpleQuote) Reset() {
	q.mu.Lock()
	changed := q.set
	q.set = false
	q.value = 0
	q.mu.Unlock()

	if changed {
		q.Notify()
	}
}
