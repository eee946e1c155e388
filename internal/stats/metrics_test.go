package stats

import (
	"math"
	"testing"

	"github.com/san-kum/quantsim/internal/quant"
)

func TestRealizedVariance_ConstantPath(t *testing.T) {
	rv := NewRealizedVariance()

	for i := 0; i < 10; i++ {
		rv.Observe(quant.State{100, 0.04}, float64(i)*0.1)
	}

	if rv.Value() != 0 {
		t.Errorf("constant path should have zero realized variance, got %f", rv.Value())
	}
}

func TestRealizedVariance_KnownMoves(t *testing.T) {
	rv := NewRealizedVariance()

	// Two moves of log(1.1) over a span of 1 year.
	rv.Observe(quant.State{100}, 0.0)
	rv.Observe(quant.State{110}, 0.5)
	rv.Observe(quant.State{121}, 1.0)

	dlog := math.Log(1.1)
	want := 2 * dlog * dlog // sumSq / 1 year
	if math.Abs(rv.Value()-want) > 1e-12 {
		t.Errorf("realized variance: got %f, want %f", rv.Value(), want)
	}
}

func TestRealizedVariance_Reset(t *testing.T) {
	rv := NewRealizedVariance()
	rv.Observe(quant.State{100}, 0)
	rv.Observe(quant.State{120}, 1)

	rv.Reset()
	if rv.Value() != 0 {
		t.Errorf("expected zero after reset, got %f", rv.Value())
	}
}

func TestMaxDrawdown(t *testing.T) {
	md := NewMaxDrawdown()

	prices := []float64{100, 120, 90, 110, 80, 130}
	for i, p := range prices {
		md.Observe(quant.State{p}, float64(i))
	}

	// Peak 120, trough 80.
	want := (120.0 - 80.0) / 120.0
	if math.Abs(md.Value()-want) > 1e-12 {
		t.Errorf("max drawdown: got %f, want %f", md.Value(), want)
	}
}

func TestMaxDrawdown_MonotonePath(t *testing.T) {
	md := NewMaxDrawdown()
	for i := 1; i <= 5; i++ {
		md.Observe(quant.State{float64(100 + i)}, float64(i))
	}
	if md.Value() != 0 {
		t.Errorf("rising path should have zero drawdown, got %f", md.Value())
	}
}

func TestTerminalValue(t *testing.T) {
	tv := NewTerminalValue(1)

	tv.Observe(quant.State{100, 0.04}, 0)
	tv.Observe(quant.State{105, 0.05}, 1)

	if tv.Value() != 0.05 {
		t.Errorf("terminal value: got %f, want 0.05", tv.Value())
	}
}

func TestSummarize(t *testing.T) {
	results := []*quant.Result{
		{Terminal: quant.State{90, 0.04}},
		{Terminal: quant.State{100, 0.04}},
		{Terminal: quant.State{110, 0.04}},
		nil,
	}

	s := Summarize(results)
	if s.Paths != 3 {
		t.Fatalf("expected 3 paths, got %d", s.Paths)
	}
	if math.Abs(s.Mean-100) > 1e-12 {
		t.Errorf("mean: got %f, want 100", s.Mean)
	}
	if s.Min != 90 || s.Max != 110 {
		t.Errorf("min/max: got %f/%f, want 90/110", s.Min, s.Max)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Paths != 0 {
		t.Errorf("expected empty summary, got %d paths", s.Paths)
	}
}
