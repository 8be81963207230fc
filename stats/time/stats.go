// Package time provides time-domain signal statistics used to judge noise
// and filtering quality.
package time

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return stat.Mean(signal, nil)
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Norm(signal, 2) / math.Sqrt(float64(len(signal)))
}

// Std returns the population standard deviation of the signal.
func Std(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(signal, nil)
	return math.Sqrt(variance)
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}
	return Peak(signal) / r
}

// ResidualNoise returns the standard deviation of signal - reference, the
// noise left in signal relative to a known clean reference.
func ResidualNoise(signal, reference []float64) (float64, error) {
	if len(signal) != len(reference) {
		return 0, fmt.Errorf("%w: residual lengths differ: %d != %d",
			core.ErrInvalidParameter, len(signal), len(reference))
	}
	if len(signal) == 0 {
		return 0, fmt.Errorf("%w: residual of empty signals", core.ErrInsufficientData)
	}

	diff := make([]float64, len(signal))
	floats.SubTo(diff, signal, reference)

	return Std(diff), nil
}

// NoiseReduction returns the percentage by which noise fell from before to
// after, (1 - after/before) * 100. It is 0 when before is 0.
func NoiseReduction(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (1 - after/before) * 100
}

// Streaming accumulates count, mean, standard deviation and peak across
// blocks with Welford's update.
type Streaming struct {
	count int
	mean  float64
	m2    float64
	peak  float64
}

// Update adds a block of samples.
func (s *Streaming) Update(samples []float64) {
	for _, x := range samples {
		s.count++
		delta := x - s.mean
		s.mean += delta / float64(s.count)
		s.m2 += delta * (x - s.mean)
		s.peak = math.Max(s.peak, math.Abs(x))
	}
}

// Count returns the samples seen.
func (s *Streaming) Count() int { return s.count }

// Mean returns the running mean.
func (s *Streaming) Mean() float64 { return s.mean }

// Std returns the running population standard deviation.
func (s *Streaming) Std() float64 {
	if s.count == 0 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count))
}

// Peak returns the largest absolute sample seen.
func (s *Streaming) Peak() float64 { return s.peak }

// Reset clears the accumulator.
func (s *Streaming) Reset() { *s = Streaming{} }
