package core

import "errors"

// Error taxonomy shared by every package in the module. Callers match with
// errors.Is; packages wrap these sentinels with the offending values.
var (
	// ErrInvalidParameter reports a parameter outside its valid domain, such
	// as a cutoff at or above Nyquist, a non-positive sample rate, or an even
	// median window.
	ErrInvalidParameter = errors.New("dsp: invalid parameter")

	// ErrInsufficientData reports a buffer that is too short for the
	// requested operation (filter padding, adaptive tap length, PSD segment).
	ErrInsufficientData = errors.New("dsp: insufficient data")
)
