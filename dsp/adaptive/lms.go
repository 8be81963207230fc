// Package adaptive provides adaptive noise cancellation.
//
// An [LMS] filter estimates the component of a primary signal that is
// linearly predictable from a reference signal (for example motion or mains
// pickup) and subtracts it, adapting its weights on every sample.
package adaptive

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// LMS is a least-mean-squares adaptive FIR canceller.
//
// Weights start at zero and persist across Process calls, so consecutive
// blocks of one stream continue adapting. LMS is not safe for concurrent use.
type LMS struct {
	weights []float64
	step    float64
	window  []float64
}

// NewLMS returns a canceller with taps weights and adaptation step mu.
func NewLMS(taps int, step float64) (*LMS, error) {
	if taps < 1 {
		return nil, fmt.Errorf("%w: LMS taps must be >= 1: %d", core.ErrInvalidParameter, taps)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: LMS step must be > 0 and finite: %v", core.ErrInvalidParameter, step)
	}

	return &LMS{
		weights: make([]float64, taps),
		step:    step,
		window:  make([]float64, taps),
	}, nil
}

// Process cancels the reference-correlated component of primary.
//
// For each i >= Taps, the reference window holds reference[i-1] down to
// reference[i-Taps] (most recent first). The output is the prediction error
// primary[i] - w.window, and the weights move by 2*mu*error*window. The first
// Taps outputs are zero.
func (l *LMS) Process(primary, reference []float64) ([]float64, error) {
	if len(primary) != len(reference) {
		return nil, fmt.Errorf("%w: primary and reference lengths differ: %d vs %d",
			core.ErrInvalidParameter, len(primary), len(reference))
	}

	taps := len(l.weights)
	if len(primary) <= taps {
		return nil, fmt.Errorf("%w: LMS with %d taps needs more than %d samples, got %d",
			core.ErrInsufficientData, taps, taps, len(primary))
	}

	out := make([]float64, len(primary))
	win := l.window

	for i := taps; i < len(primary); i++ {
		for k := range win {
			win[k] = reference[i-1-k]
		}

		e := primary[i] - floats.Dot(l.weights, win)
		out[i] = e

		floats.AddScaled(l.weights, 2*l.step*e, win)
	}

	return out, nil
}

// Weights returns a copy of the current weights.
func (l *LMS) Weights() []float64 {
	return core.Clone(l.weights)
}

// Taps returns the filter length.
func (l *LMS) Taps() int { return len(l.weights) }

// Step returns the adaptation step size.
func (l *LMS) Step() float64 { return l.step }

// Reset zeros the weights.
func (l *LMS) Reset() {
	for i := range l.weights {
		l.weights[i] = 0
	}
}
