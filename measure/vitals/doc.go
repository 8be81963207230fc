// Package vitals extracts vital signs from conditioned biosignals in the
// frequency domain: heart rate from the dominant pulse frequency,
// respiration rate from the dominant breathing frequency, and signal
// quality from the shape of the power spectrum.
//
// Heart and respiration rates use the Hann amplitude spectrum of the whole
// buffer, so their resolution is sampleRate/len(x) Hz. Quality metrics use
// a Welch PSD.
package vitals
