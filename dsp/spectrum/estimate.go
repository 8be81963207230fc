package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/window"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Estimate is a single-sided amplitude and phase spectrum. The three slices
// have equal length and Frequencies is strictly increasing from 0.
type Estimate struct {
	Frequencies []float64 // Hz
	Magnitude   []float64 // |X[k]| * 2/N
	Phase       []float64 // radians
}

// Len returns the number of bins.
func (e Estimate) Len() int { return len(e.Frequencies) }

// Resolution returns the bin spacing in Hz, or 0 for fewer than two bins.
func (e Estimate) Resolution() float64 {
	if len(e.Frequencies) < 2 {
		return 0
	}

	return e.Frequencies[1] - e.Frequencies[0]
}

// Compute returns the spectrum of x after a symmetric Hann window of
// len(x). Bins 0 .. ceil(N/2)-1 are kept, at k*sampleRate/N Hz.
func Compute(x []float64, sampleRate float64) (Estimate, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return Estimate{}, err
	}

	n := len(x)
	if n == 0 {
		return Estimate{}, fmt.Errorf("%w: spectrum of empty input", core.ErrInsufficientData)
	}

	windowed, err := window.ApplyCoefficients(x, window.Generate(window.TypeHann, n))
	if err != nil {
		return Estimate{}, err
	}

	bins := fft.FFTReal(windowed)[:(n+1)/2]

	mag := Magnitude(bins)
	vecmath.ScaleBlock(mag, mag, 2/float64(n))

	return Estimate{
		Frequencies: binFrequencies(len(bins), sampleRate/float64(n)),
		Magnitude:   mag,
		Phase:       Phase(bins),
	}, nil
}

// DominantFrequency returns the frequency and magnitude of the strongest
// bin with lo <= f <= hi. Ties resolve to the lowest frequency. If no bin
// falls inside the band, it returns (0, 0).
func DominantFrequency(est Estimate, lo, hi float64) (freq, mag float64) {
	k, ok := bandArgMax(est.Frequencies, est.Magnitude, lo, hi)
	if !ok {
		return 0, 0
	}

	return est.Frequencies[k], est.Magnitude[k]
}

// bandArgMax returns the index of the first maximum of values over bins
// whose frequency lies in [lo, hi]. freqs must be increasing.
func bandArgMax(freqs, values []float64, lo, hi float64) (int, bool) {
	i0 := 0
	for i0 < len(freqs) && freqs[i0] < lo {
		i0++
	}

	i1 := i0
	for i1 < len(freqs) && freqs[i1] <= hi {
		i1++
	}

	if i1 == i0 {
		return 0, false
	}

	return i0 + floats.MaxIdx(values[i0:i1]), true
}

func binFrequencies(n int, df float64) []float64 {
	freqs := make([]float64, n)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}

	return freqs
}
