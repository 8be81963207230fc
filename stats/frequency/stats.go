// Package frequency computes shape descriptors of power spectra: Shannon
// entropy, flatness and centroid.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy in bits of power normalised to a
// probability distribution. Zero bins contribute nothing. An empty or
// all-zero spectrum yields 0.
func Entropy(power []float64) float64 {
	sum := floats.Sum(power)
	if !(sum > 0) {
		return 0
	}

	p := make([]float64, len(power))
	floats.ScaleTo(p, 1/sum, power)

	return stat.Entropy(p) / math.Ln2
}

// MaxEntropy returns the entropy in bits of a uniform spectrum of n bins,
// the upper bound of [Entropy].
func MaxEntropy(n int) float64 {
	if n < 1 {
		return 0
	}
	return math.Log2(float64(n))
}

// Flatness returns the spectral flatness (Wiener entropy) of power: the
// ratio of geometric to arithmetic mean over bins 1..N-1, skipping DC.
// The result lies in [0, 1]; 1 is white, near 0 is tonal. Any zero bin
// makes the flatness 0.
func Flatness(power []float64) float64 {
	if len(power) < 2 {
		return 0
	}

	bins := power[1:]

	mean := stat.Mean(bins, nil)
	if mean <= 0 {
		return 0
	}

	for _, v := range bins {
		if v <= 0 {
			return 0
		}
	}

	return stat.GeometricMean(bins, nil) / mean
}

// Centroid returns the power-weighted mean frequency in Hz, or 0 when the
// spectrum carries no power. freqs and power must have equal length.
func Centroid(freqs, power []float64) float64 {
	if len(freqs) != len(power) || !(floats.Sum(power) > 0) {
		return 0
	}
	return stat.Mean(freqs, power)
}
