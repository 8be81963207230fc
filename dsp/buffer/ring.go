package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Ring is a fixed-capacity FIFO of samples. Pushing into a full ring
// overwrites the oldest sample.
type Ring struct {
	data  []float64
	head  int // next write position
	count int
}

// NewRing returns an empty ring holding up to capacity samples.
func NewRing(capacity int) (*Ring, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: ring capacity must be >= 1: %d", core.ErrInvalidParameter, capacity)
	}
	return &Ring{data: make([]float64, capacity)}, nil
}

// Push appends v. It returns false when the oldest sample was overwritten.
func (r *Ring) Push(v float64) bool {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)

	if r.count == len(r.data) {
		return false
	}
	r.count++
	return true
}

// Pop removes and returns the oldest sample.
func (r *Ring) Pop() (float64, bool) {
	if r.count == 0 {
		return 0, false
	}
	v := r.data[r.tail()]
	r.count--
	return v, true
}

// Peek returns the sample at position i, where 0 is the oldest.
func (r *Ring) Peek(i int) (float64, bool) {
	if i < 0 || i >= r.count {
		return 0, false
	}
	return r.data[(r.tail()+i)%len(r.data)], true
}

// Len returns the number of stored samples.
func (r *Ring) Len() int { return r.count }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.data) }

// Full reports whether the next Push overwrites.
func (r *Ring) Full() bool { return r.count == len(r.data) }

// Mean returns the mean of the stored samples, or 0 when empty.
func (r *Ring) Mean() float64 {
	if r.count == 0 {
		return 0
	}
	a, b := r.segments()
	return (floats.Sum(a) + floats.Sum(b)) / float64(r.count)
}

// Snapshot copies the stored samples oldest first into dst, growing it if
// needed, and returns the filled slice.
func (r *Ring) Snapshot(dst []float64) []float64 {
	dst = core.EnsureLen(dst, r.count)
	a, b := r.segments()
	n := copy(dst, a)
	copy(dst[n:], b)
	return dst
}

// Reset empties the ring.
func (r *Ring) Reset() {
	r.head = 0
	r.count = 0
	clear(r.data)
}

func (r *Ring) tail() int {
	return (r.head - r.count + len(r.data)) % len(r.data)
}

// segments returns the stored samples as two contiguous runs, oldest first.
func (r *Ring) segments() (a, b []float64) {
	t := r.tail()
	if t+r.count <= len(r.data) {
		return r.data[t : t+r.count], nil
	}
	return r.data[t:], r.data[:r.head]
}
