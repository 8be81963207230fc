package fir

import (
	"math"

	"github.com/cwbudde/algo-vitals/dsp/window"
)

// Lowpass designs a Hamming-windowed sinc lowpass with numTaps coefficients
// and unit gain at DC. It returns nil if the parameters are invalid.
func Lowpass(numTaps int, cutoff, sampleRate float64) []float64 {
	if numTaps < 1 || !validCutoff(cutoff, sampleRate) {
		return nil
	}

	nyq := sampleRate / 2

	return windowedSinc(numTaps, [][2]float64{{0, cutoff / nyq}}, 0)
}

// Highpass designs a Hamming-windowed sinc highpass with unit gain at
// Nyquist. numTaps must be odd: an even-length linear-phase filter has a
// forced zero at Nyquist. It returns nil if the parameters are invalid.
func Highpass(numTaps int, cutoff, sampleRate float64) []float64 {
	if numTaps < 1 || numTaps%2 == 0 || !validCutoff(cutoff, sampleRate) {
		return nil
	}

	nyq := sampleRate / 2

	return windowedSinc(numTaps, [][2]float64{{cutoff / nyq, 1}}, 1)
}

// Bandpass designs a Hamming-windowed sinc bandpass passing [low, high] Hz
// with unit gain at the band centre. It returns nil if the parameters are
// invalid.
func Bandpass(numTaps int, low, high, sampleRate float64) []float64 {
	if numTaps < 1 || !validCutoff(low, sampleRate) || !validCutoff(high, sampleRate) || low >= high {
		return nil
	}

	nyq := sampleRate / 2
	lo, hi := low/nyq, high/nyq

	return windowedSinc(numTaps, [][2]float64{{lo, hi}}, (lo+hi)/2)
}

// windowedSinc sums ideal band responses (edges normalised to Nyquist),
// applies a symmetric Hamming window and scales the result to unit gain at
// scaleFreq (also Nyquist-normalised).
func windowedSinc(numTaps int, bands [][2]float64, scaleFreq float64) []float64 {
	alpha := float64(numTaps-1) / 2
	h := make([]float64, numTaps)

	for n := range h {
		m := float64(n) - alpha
		for _, b := range bands {
			h[n] += b[1]*sinc(b[1]*m) - b[0]*sinc(b[0]*m)
		}
	}

	window.Apply(window.TypeHamming, h)

	var s float64
	for n, v := range h {
		s += v * math.Cos(math.Pi*(float64(n)-alpha)*scaleFreq)
	}

	if s != 0 {
		for n := range h {
			h[n] /= s
		}
	}

	return h
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

func validCutoff(freq, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || math.IsNaN(freq) {
		return false
	}

	return freq > 0 && freq < sampleRate/2
}
