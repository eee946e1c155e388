package quote

import (
	"errors"
	"testing"

	"github.com/san-kum/quantsim/internal/quant"
)

type countingObserver struct {
	updates int
}

func (c *countingObserver) Update() { c.updates++ }

func TestSimpleQuote_Value(t *testing.T) {
	q := NewSimpleQuote(100.0)

	v, err := q.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 100.0 {
		t.Errorf("expected 100.0, got %f", v)
	}
}

func TestSimpleQuote_Unset(t *testing.T) {
	var q SimpleQuote

	if q.IsValid() {
		t.Error("zero-value quote should not be valid")
	}
	if _, err := q.Value(); !errors.Is(err, quant.ErrUninitializedQuote) {
		t.Errorf("expected ErrUninitializedQuote, got %v", err)
	}
}

func TestSimpleQuote_NotifyOnChange(t *testing.T) {
	q := NewSimpleQuote(100.0)
	obs := &countingObserver{}
	q.Attach(obs)

	q.SetValue(101.0)
	if obs.updates != 1 {
		t.Errorf("expected 1 update, got %d", obs.updates)
	}

	// Same value again must not notify.
	q.SetValue(101.0)
	if obs.updates != 1 {
		t.Errorf("expected no update for unchanged value, got %d", obs.updates)
	}
}

func TestSimpleQuote_Reset(t *testing.T) {
	q := NewSimpleQuote(100.0)
	obs := &countingObserver{}
	q.Attach(obs)

	q.Reset()
	if q.IsValid() {
		t.Error("quote still valid after Reset")
	}
	if obs.updates != 1 {
		t.Errorf("expected 1 update on Reset, got %d", obs.updates)
	}
}

func TestHandle_Empty(t *testing.T) {
	h := NewHandle(nil)

	if !h.Empty() {
		t.Error("expected empty handle")
	}
	if h.CurrentLink() != nil {
		t.Error("expected nil current link")
	}
	if _, err := h.Value(); !errors.Is(err, quant.ErrEmptyHandle) {
		t.Errorf("expected ErrEmptyHandle, got %v", err)
	}
}

func TestHandle_ReadThrough(t *testing.T) {
	h := NewHandle(NewSimpleQuote(42.0))

	v, err := h.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42.0 {
		t.Errorf("expected 42.0, got %f", v)
	}
}

func TestHandle_ForwardsTargetNotifications(t *testing.T) {
	q := NewSimpleQuote(1.0)
	h := NewHandle(q)
	obs := &countingObserver{}
	h.Attach(obs)

	q.SetValue(2.0)
	if obs.updates != 1 {
		t.Errorf("expected target change to reach handle observer, got %d updates", obs.updates)
	}
}

func TestHandle_Relink(t *testing.T) {
	old := NewSimpleQuote(1.0)
	h := NewHandle(old)
	obs := &countingObserver{}
	h.Attach(obs)

	repl := NewSimpleQuote(9.0)
	h.Link(repl)

	if obs.updates != 1 {
		t.Errorf("expected relink to notify, got %d updates", obs.updates)
	}
	if v, _ := h.Value(); v != 9.0 {
		t.Errorf("expected 9.0 after relink, got %f", v)
	}

	// The old target must be disconnected.
	before := obs.updates
	old.SetValue(5.0)
	if obs.updates != before {
		t.Error("old target still notifying after relink")
	}

	// The new target must be connected.
	repl.SetValue(10.0)
	if obs.updates != before+1 {
		t.Error("new target not notifying after relink")
	}
}
