package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

// Handler receives one analysis window, oldest sample first. The slice is
// only valid for the duration of the call.
type Handler func(window []float64)

// Windower buffers a sample stream and calls a handler with the latest
// size samples once the window has filled and then every hop samples.
// A Windower is not safe for concurrent use.
type Windower struct {
	ring    *Ring
	pool    *Pool
	hop     int
	handler Handler
	pending int // samples since the last emission
	emitted int
}

// NewWindower creates a windower emitting size-sample windows every hop
// samples. hop may exceed size, in which case samples between windows are
// skipped.
func NewWindower(size, hop int, handler Handler) (*Windower, error) {
	if hop < 1 {
		return nil, fmt.Errorf("%w: windower hop must be >= 1: %d", core.ErrInvalidParameter, hop)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: windower handler is nil", core.ErrInvalidParameter)
	}

	ring, err := NewRing(size)
	if err != nil {
		return nil, err
	}

	return &Windower{
		ring:    ring,
		pool:    NewPool(size),
		hop:     hop,
		handler: handler,
	}, nil
}

// Push adds one sample and emits a window when one is due.
func (w *Windower) Push(x float64) {
	w.ring.Push(x)
	w.pending++

	if !w.ring.Full() {
		return
	}
	if w.emitted > 0 && w.pending < w.hop {
		return
	}

	buf := w.pool.Get()
	w.handler(w.ring.Snapshot(buf.Samples()))
	w.pool.Put(buf)

	w.pending = 0
	w.emitted++
}

// Write pushes a block of samples.
func (w *Windower) Write(block []float64) {
	for _, x := range block {
		w.Push(x)
	}
}

// Emitted returns the number of windows delivered so far.
func (w *Windower) Emitted() int { return w.emitted }

// Size returns the window length in samples.
func (w *Windower) Size() int { return w.ring.Cap() }

// Hop returns the samples between window starts.
func (w *Windower) Hop() int { return w.hop }

// Reset discards buffered samples and the emission count.
func (w *Windower) Reset() {
	w.ring.Reset()
	w.pending = 0
	w.emitted = 0
}
