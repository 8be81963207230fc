// Package fir provides a direct-form FIR filter runtime and windowed-sinc
// coefficient design.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. [Lowpass], [Highpass] and [Bandpass]
// design linear-phase, Hamming-windowed coefficient sets whose passband gain
// is normalised to one.
package fir
