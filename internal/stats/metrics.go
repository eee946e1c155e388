// Package stats provides per-path metrics and ensemble summaries.
package stats

import (
	"math"

	"github.com/san-kum/quantsim/internal/quant"
)

// RealizedVariance accumulates squared log returns of the price
// component, annualized over the observed span.
type RealizedVariance struct {
	name    string
	prev    float64
	firstT  float64
	lastT   float64
	sumSq   float64
	samples int
}

func NewRealizedVariance() *RealizedVariance {
	return &RealizedVariance{name: "realized_variance"}
}

func (r *RealizedVariance) Name() string { return r.name }

func (r *RealizedVariance) Observe(x quant.State, t float64) {
	if len(x) < 1 || x[0] <= 0 {
		return
	}
	if r.samples > 0 {
		dlog := math.Log(x[0] / r.prev)
		r.sumSq += dlog * dlog
		r.lastT = t
	} else {
		r.firstT = t
	}
	r.prev = x[0]
	r.samples++
}

func (r *RealizedVariance) Value() float64 {
	span := r.lastT - r.firstT
	if span <= 0 {
		return 0
	}
	return r.sumSq / span
}

func (r *RealizedVariance) Reset() {
	r.prev = 0
	r.firstT = 0
	r.lastT = 0
	r.sumSq = 0
	r.samples = 0
}

// MaxDrawdown tracks the largest peak-to-trough decline of the price
// component, as a fraction of the peak.
type MaxDrawdown struct {
	name    string
	peak    float64
	maxDraw float64
	samples int
}

func NewMaxDrawdown() *MaxDrawdown {
	return &MaxDrawdown{name: "max_drawdown"}
}

func (m *MaxDrawdown) Name() string { return m.name }

func (m *MaxDrawdown) Observe(x quant.State, t float64) {
	if len(x) < 1 {
		return
	}
	p := x[0]
	if m.samples == 0 || p > m.peak {
		m.peak = p
	}
	if m.peak > 0 {
		draw := (m.peak - p) / m.peak
		if draw > m.maxDraw {
			m.maxDraw = draw
		}
	}
	m.samples++
}

func (m *MaxDrawdown) Value() float64 { return m.maxDraw }

func (m *MaxDrawdown) Reset() {
	m.peak = 0
	m.maxDraw = 0
	m.samples = 0
}

// TerminalValue records the last observed value of one state component.
type TerminalValue struct {
	name      string
	component int
	last      float64
}

func NewTerminalValue(component int) *TerminalValue {
	return &TerminalValue{name: "terminal_value", component: component}
}

func (v *TerminalValue) Name() string { return v.name }

func (v *TerminalValue) Observe(x quant.State, t float64) {
	if v.component < len(x) {
		v.last = x[v.component]
	}
}

func (v *TerminalValue) Value() float64 { return v.last }

func (v *TerminalValue) Reset() { v.last = 0 }
