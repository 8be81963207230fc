package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/window"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultSegmentLength is the Welch segment length used when none is set.
const DefaultSegmentLength = 256

// PSD is a one-sided power spectral density in units^2/Hz.
type PSD struct {
	Frequencies []float64 // Hz, 0 .. sampleRate/2
	Power       []float64
}

// Dominant returns the frequency and density of the strongest bin with
// lo <= f <= hi, or (0, 0) if the band holds no bins.
func (p PSD) Dominant(lo, hi float64) (freq, power float64) {
	k, ok := bandArgMax(p.Frequencies, p.Power, lo, hi)
	if !ok {
		return 0, 0
	}

	return p.Frequencies[k], p.Power[k]
}

// WelchOption configures Welch.
type WelchOption func(*welchConfig)

type welchConfig struct {
	segment int
	overlap int // -1: half a segment
}

// WithSegmentLength sets the samples per segment. Inputs shorter than the
// segment use a single segment of len(x). Values < 1 are ignored.
func WithSegmentLength(n int) WelchOption {
	return func(cfg *welchConfig) {
		if n >= 1 {
			cfg.segment = n
		}
	}
}

// WithOverlap sets the samples shared by consecutive segments. It must be
// smaller than the segment length. Negative values are ignored.
func WithOverlap(n int) WelchOption {
	return func(cfg *welchConfig) {
		if n >= 0 {
			cfg.overlap = n
		}
	}
}

// Welch estimates the power spectral density of x by averaging periodograms
// of overlapping, mean-removed, periodic-Hann-windowed segments. Densities
// are scaled by 1/(sampleRate*sum(w^2)) and folded to one side.
func Welch(x []float64, sampleRate float64, opts ...WelchOption) (PSD, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return PSD{}, err
	}

	if len(x) < 2 {
		return PSD{}, fmt.Errorf("%w: Welch needs at least 2 samples, got %d", core.ErrInsufficientData, len(x))
	}

	cfg := welchConfig{segment: DefaultSegmentLength, overlap: -1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	nper := min(cfg.segment, len(x))

	overlap := cfg.overlap
	if overlap < 0 {
		overlap = nper / 2
	}

	if overlap >= nper {
		return PSD{}, fmt.Errorf("%w: Welch overlap %d must be below segment length %d",
			core.ErrInvalidParameter, overlap, nper)
	}

	win := window.Generate(window.TypeHann, nper, window.WithPeriodic())
	scale := 1 / (sampleRate * window.EnergySum(win))

	step := nper - overlap
	segments := (len(x) - overlap) / step
	bins := nper/2 + 1

	acc := make([]float64, bins)
	seg := make([]float64, nper)

	for s := range segments {
		copy(seg, x[s*step:s*step+nper])
		floats.AddConst(-stat.Mean(seg, nil), seg)
		vecmath.MulBlockInPlace(seg, win)

		floats.Add(acc, Power(fft.FFTReal(seg)[:bins]))
	}

	floats.Scale(scale/float64(segments), acc)

	// Fold negative frequencies; DC and an even-length Nyquist bin are unique.
	last := bins
	if nper%2 == 0 {
		last = bins - 1
	}
	for k := 1; k < last; k++ {
		acc[k] *= 2
	}

	return PSD{
		Frequencies: binFrequencies(bins, sampleRate/float64(nper)),
		Power:       acc,
	}, nil
}
