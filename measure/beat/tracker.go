package beat

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

// Tracker detects beats one sample at a time against a fixed threshold.
// A beat is reported one sample late, once the following sample confirms
// the local maximum. The refractory period is honoured as in [Detector];
// the threshold ratio option is ignored.
type Tracker struct {
	threshold float64
	minGap    float64
	n         int // samples seen
	prev      float64
	prev2     float64
	last      int // index of the last beat, -1 before the first
	beats     int
}

// NewTracker creates a streaming detector for signals sampled at
// sampleRate Hz.
func NewTracker(sampleRate, threshold float64, opts ...Option) (*Tracker, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if !core.IsFinite(threshold) {
		return nil, fmt.Errorf("%w: tracker threshold %v", core.ErrInvalidParameter, threshold)
	}

	cfg := applyOptions(opts)

	return &Tracker{
		threshold: threshold,
		minGap:    cfg.refractory * sampleRate,
		last:      -1,
	}, nil
}

// Push feeds one sample. It returns the index of a beat at the previous
// sample, if one was confirmed.
func (t *Tracker) Push(x float64) (beat int, ok bool) {
	i := t.n - 1 // candidate index
	if t.n >= 2 && t.prev > t.threshold && t.prev > t.prev2 && t.prev > x {
		if t.last < 0 || float64(i-t.last) > t.minGap {
			t.last = i
			t.beats++
			beat, ok = i, true
		}
	}

	t.prev2, t.prev = t.prev, x
	t.n++

	return beat, ok
}

// Process feeds a block and appends confirmed beat indices to dst.
func (t *Tracker) Process(dst []int, block []float64) []int {
	for _, x := range block {
		if i, ok := t.Push(x); ok {
			dst = append(dst, i)
		}
	}
	return dst
}

// Beats returns the number of beats reported so far.
func (t *Tracker) Beats() int { return t.beats }

// Reset clears the sample history.
func (t *Tracker) Reset() {
	t.n = 0
	t.prev, t.prev2 = 0, 0
	t.last = -1
	t.beats = 0
}
