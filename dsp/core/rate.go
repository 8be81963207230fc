package core

import (
	"fmt"
	"math"
)

// ValidateSampleRate checks that sampleRate is positive and finite.
func ValidateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0 and finite: %v", ErrInvalidParameter, sampleRate)
	}
	return nil
}

// Nyquist returns half the sample rate.
func Nyquist(sampleRate float64) float64 {
	return sampleRate / 2
}

// ValidateFrequency checks 0 < freq < Nyquist. name labels the parameter in
// the returned error.
func ValidateFrequency(name string, freq, sampleRate float64) error {
	nyq := Nyquist(sampleRate)
	if !(freq > 0) || !(freq < nyq) {
		return fmt.Errorf("%w: %s %v Hz outside (0, %v) at %v Hz sample rate",
			ErrInvalidParameter, name, freq, nyq, sampleRate)
	}
	return nil
}

// ValidateBand checks that low and high are valid frequencies and low < high.
func ValidateBand(name string, low, high, sampleRate float64) error {
	if err := ValidateFrequency(name+" low edge", low, sampleRate); err != nil {
		return err
	}
	if err := ValidateFrequency(name+" high edge", high, sampleRate); err != nil {
		return err
	}
	if !(low < high) {
		return fmt.Errorf("%w: %s low edge %v Hz must be below high edge %v Hz", ErrInvalidParameter, name, low, high)
	}
	return nil
}
