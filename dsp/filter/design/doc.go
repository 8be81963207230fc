// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style single sections
// (Lowpass, Highpass, Bandpass, Notch) and Butterworth cascades for lowpass,
// highpass and bandpass responses.
//
// Designers return nil (or zero coefficients) for parameters they cannot
// realise. Callers that need error reporting validate first, as
// dsp/filter/bank does.
package design
