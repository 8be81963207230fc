// Package testutil holds deterministic test signals and tolerance helpers
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*f*i/fs).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Harmonics generates sum_k amps[k]*sin(2*pi*(k+1)*f0*i/fs), a periodic
// waveform with a fundamental at f0.
func Harmonics(f0, sampleRate float64, amps []float64, length int) []float64 {
	out := make([]float64, length)
	for k, a := range amps {
		step := 2 * math.Pi * float64(k+1) * f0 / sampleRate
		for i := range out {
			out[i] += a * math.Sin(step*float64(i))
		}
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// GaussianNoise generates zero-mean Gaussian noise with the given standard
// deviation and a fixed seed.
func GaussianNoise(seed int64, std float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * std
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// PulseTrain places a unit impulse at offset, offset+period, ... .
func PulseTrain(length, offset, period int) []float64 {
	out := make([]float64, length)
	if period <= 0 {
		return out
	}
	for i := offset; i < length; i += period {
		if i >= 0 {
			out[i] = 1
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Add returns the element-wise sum of equal-length signals.
func Add(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}
