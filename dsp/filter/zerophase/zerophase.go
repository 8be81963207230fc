// Package zerophase applies IIR and FIR filters forward and backward so the
// result has zero phase distortion and a squared magnitude response.
//
// The input is extended at both ends by odd reflection and each pass starts
// from the filter's steady state for the first sample it sees, which keeps
// start-up transients out of the returned samples.
package zerophase

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/filter/biquad"
	"github.com/cwbudde/algo-vitals/dsp/filter/fir"
)

// PadLength returns the edge extension used by IIR for a cascade of
// sections. First-order sections (B2 == A2 == 0) shorten the extension.
func PadLength(sections []biquad.Coefficients) int {
	var zeroB2, zeroA2 int
	for _, s := range sections {
		if s.B2 == 0 {
			zeroB2++
		}
		if s.A2 == 0 {
			zeroA2++
		}
	}

	return 3 * (2*len(sections) + 1 - min(zeroB2, zeroA2))
}

// FIRPadLength returns the edge extension used by FIR for numTaps taps.
func FIRPadLength(numTaps int) int {
	return 3 * numTaps
}

// IIR filters x forward and backward through the cascade and returns a new
// slice of len(x). An empty cascade returns a copy of x.
func IIR(x []float64, sections []biquad.Coefficients) ([]float64, error) {
	if len(sections) == 0 {
		return core.Clone(x), nil
	}

	padLen := PadLength(sections)
	if err := checkLength(len(x), padLen); err != nil {
		return nil, err
	}

	ext := core.OddExtend(x, padLen)
	chain := biquad.NewChain(sections)

	chain.Prime(ext[0])
	chain.ProcessBlock(ext)
	core.Reverse(ext)

	chain.Prime(ext[0])
	chain.ProcessBlock(ext)
	core.Reverse(ext)

	return trim(ext, padLen, len(x)), nil
}

// FIR filters x forward and backward with the given taps and returns a new
// slice of len(x).
func FIR(x, taps []float64) ([]float64, error) {
	if len(taps) == 0 {
		return nil, fmt.Errorf("%w: FIR needs at least one tap", core.ErrInvalidParameter)
	}

	padLen := FIRPadLength(len(taps))
	if err := checkLength(len(x), padLen); err != nil {
		return nil, err
	}

	ext := core.OddExtend(x, padLen)
	f := fir.New(taps)

	f.Prime(ext[0])
	f.ProcessBlock(ext)
	core.Reverse(ext)

	f.Prime(ext[0])
	f.ProcessBlock(ext)
	core.Reverse(ext)

	return trim(ext, padLen, len(x)), nil
}

// FIRCausal applies taps once, forward, from a zero delay line. A
// linear-phase design delays the output by (len(taps)-1)/2 samples.
func FIRCausal(x, taps []float64) ([]float64, error) {
	if len(taps) == 0 {
		return nil, fmt.Errorf("%w: FIR needs at least one tap", core.ErrInvalidParameter)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty input", core.ErrInsufficientData)
	}

	out := make([]float64, len(x))
	fir.New(taps).ProcessBlockTo(out, x)

	return out, nil
}

func checkLength(n, padLen int) error {
	if n <= padLen {
		return fmt.Errorf("%w: zero-phase filtering needs more than %d samples, got %d",
			core.ErrInsufficientData, padLen, n)
	}

	return nil
}

func trim(ext []float64, padLen, n int) []float64 {
	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])

	return out
}
