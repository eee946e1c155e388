package quote

import (
	"fmt"
	"sync"

	"github.com/san-kum/quantsim/internal/quant"
)

// Handle is a relinkable indirection cell over a Quote. Observers attach
// to the handle, not to the target: a notification from the current
// target is forwarded, and relinking the handle to a different quote is
// itself a change notification. The handle's lifetime is independent of
// any target's.
type Handle struct {
	quant.Observable

	mu   sync.RWMutex
	link Quote
}

// NewHandle returns a handle linked to q. A nil q yields an empty handle.
func NewHandle(q Quote) *Handle {
	h := &Handle{}
	if q != nil {
		h.Link(q)
	}
	return h
}

// Update implements quant.Observer; target notifications are forwarded to
// the handle's own observers.
func (h *Handle) Update() {
	h.Notify()
}

// Link rebinds the handle to q (nil unlinks) and notifies observers.
func (h *Handle) Link(q Quote) {
	h.mu.Lock()
	if h.link != nil {
		h.link.Detach(h)
	}
	h.link = q
	if q != nil {
		q.Attach(h)
	}
	h.mu.Unlock()

	h.Notify()
}

// Empty reports whether the handle is currently linked to any quote.
func (h *Handle) Empty() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.link == nil
}

// CurrentLink returns the quote the handle is linked to, or nil.
func (h *Handle) CurrentLink() Quote {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.link
}

// Value reads through to the linked quote.
func (h *Handle) Value() (float64, error) {
	h.mu.RLock()
	link := h.link
	h.mu.RUnlock()

	if link == nil {
		return 0, fmt.Errorf("quote handle: %w", quant.ErrEmptyHandle)
	}
	return link.Value()
}
