package buffer

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/internal/testutil"
)

func TestWindowerEmission(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		hop    int
		n      int
		starts []float64
	}{
		{name: "non-overlapping", size: 4, hop: 4, n: 12, starts: []float64{0, 4, 8}},
		{name: "half overlap", size: 4, hop: 2, n: 10, starts: []float64{0, 2, 4, 6}},
		{name: "gapped", size: 2, hop: 5, n: 12, starts: []float64{0, 5, 10}},
		{name: "never fills", size: 8, hop: 1, n: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var starts []float64
			w, err := NewWindower(tt.size, tt.hop, func(win []float64) {
				if len(win) != tt.size {
					t.Fatalf("window length %d, want %d", len(win), tt.size)
				}
				for i := 1; i < len(win); i++ {
					if win[i] != win[i-1]+1 {
						t.Fatalf("window not contiguous: %v", win)
					}
				}
				starts = append(starts, win[0])
			})
			if err != nil {
				t.Fatalf("NewWindower: %v", err)
			}

			ramp := make([]float64, tt.n)
			for i := range ramp {
				ramp[i] = float64(i)
			}
			w.Write(ramp)

			if w.Emitted() != len(tt.starts) {
				t.Fatalf("emitted %d windows, want %d", w.Emitted(), len(tt.starts))
			}
			if len(tt.starts) > 0 {
				testutil.RequireSliceNearlyEqual(t, starts, tt.starts, 0)
			}
		})
	}
}

func TestWindowerReset(t *testing.T) {
	count := 0
	w, _ := NewWindower(3, 3, func([]float64) { count++ })

	w.Write([]float64{1, 2})
	w.Reset()
	w.Write([]float64{3, 4})
	if count != 0 {
		t.Fatal("reset windower should refill before emitting")
	}

	w.Push(5)
	if count != 1 || w.Emitted() != 1 || w.Size() != 3 || w.Hop() != 3 {
		t.Fatalf("count=%d emitted=%d", count, w.Emitted())
	}
}

func TestNewWindowerInvalid(t *testing.T) {
	noop := func([]float64) {}

	for _, tc := range []struct {
		size, hop int
		handler   Handler
	}{
		{size: 0, hop: 1, handler: noop},
		{size: 4, hop: 0, handler: noop},
		{size: 4, hop: 1, handler: nil},
	} {
		if _, err := NewWindower(tc.size, tc.hop, tc.handler); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("size=%d hop=%d: got %v", tc.size, tc.hop, err)
		}
	}
}
