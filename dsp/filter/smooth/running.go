package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

// Running is a streaming moving average over the most recent samples.
//
// Until the window has filled, the average is taken over the samples seen so
// far. The zero value is not usable; construct with NewRunning.
type Running struct {
	buf   []float64
	sum   float64
	pos   int
	count int
}

// NewRunning returns a running average over width samples.
func NewRunning(width int) (*Running, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: running average width must be >= 1: %d", core.ErrInvalidParameter, width)
	}

	return &Running{buf: make([]float64, width)}, nil
}

// Process adds x and returns the updated average.
func (r *Running) Process(x float64) float64 {
	r.sum += x - r.buf[r.pos]
	r.buf[r.pos] = x

	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
	}

	if r.count < len(r.buf) {
		r.count++
	}

	return r.sum / float64(r.count)
}

// ProcessBlock replaces each sample of buf with the running average.
func (r *Running) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = r.Process(x)
	}
}

// Average returns the current average, or 0 before the first sample.
func (r *Running) Average() float64 {
	if r.count == 0 {
		return 0
	}

	return r.sum / float64(r.count)
}

// Width returns the window length.
func (r *Running) Width() int {
	return len(r.buf)
}

// Count returns the number of samples in the window, at most Width.
func (r *Running) Count() int {
	return r.count
}

// Reset clears the window.
func (r *Running) Reset() {
	for i := range r.buf {
		r.buf[i] = 0
	}

	r.sum = 0
	r.pos = 0
	r.count = 0
}
