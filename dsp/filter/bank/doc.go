// Package bank applies conditioning filters to sampled biosignals.
//
// A [Spec] names one filter: a Butterworth lowpass, highpass or bandpass, an
// RBJ notch, a moving average, a median, or a windowed-sinc FIR. A [Bank]
// bound to a sample rate validates the spec, designs the coefficients and
// applies the filter. IIR and FIR filters run forward and backward
// (dsp/filter/zerophase), so conditioned waveforms keep their timing.
//
// Basic usage:
//
//	b, err := bank.New(500)
//	if err != nil {
//	    return err
//	}
//	clean, err := b.Cascade(raw, bank.PPGConditioning(50)...)
//
// Specs carry no state. A Bank is safe for concurrent use, and
// [Bank.ApplyChannels] filters several channels in parallel.
package bank
