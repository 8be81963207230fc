// Package spectrum estimates the frequency content of sampled signals.
//
// [Compute] returns the Hann-windowed single-sided amplitude and phase
// spectrum of a whole buffer; [Welch] returns an averaged power spectral
// density. [DominantFrequency] and [PSD.Dominant] locate the strongest bin
// in a band, and [Goertzel] measures the level of a single known tone such
// as mains interference.
//
// FFTs of arbitrary length are computed with github.com/mjibson/go-dsp/fft.
package spectrum
