// Package biquad provides second-order IIR section runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for higher-order Butterworth and notch designs produced by
// dsp/filter/design.
//
// Both types support steady-state priming: the delay line can be loaded with
// the state the filter would settle into after an infinitely long constant
// input. Zero-phase filtering relies on this to suppress edge transients.
package biquad
