package bank

import "fmt"

// Kind identifies the filter family of a Spec.
type Kind int

const (
	KindLowpass Kind = iota
	KindHighpass
	KindBandpass
	KindNotch
	KindMovingAverage
	KindMedian
	KindFIR
)

// String returns the filter family name.
func (k Kind) String() string {
	switch k {
	case KindLowpass:
		return "lowpass"
	case KindHighpass:
		return "highpass"
	case KindBandpass:
		return "bandpass"
	case KindNotch:
		return "notch"
	case KindMovingAverage:
		return "moving-average"
	case KindMedian:
		return "median"
	case KindFIR:
		return "fir"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pass selects the response of a FIR spec.
type Pass int

const (
	PassLow Pass = iota
	PassHigh
	PassBand
)

// String returns the pass type name.
func (p Pass) String() string {
	switch p {
	case PassLow:
		return "lowpass"
	case PassHigh:
		return "highpass"
	case PassBand:
		return "bandpass"
	default:
		return fmt.Sprintf("pass(%d)", int(p))
	}
}

const (
	// DefaultOrder is the Butterworth order used by the preset cascades.
	DefaultOrder = 4
	// DefaultNotchQ gives a narrow notch suitable for mains interference.
	DefaultNotchQ = 30.0
	// DefaultFIRTaps is the tap count used when a FIR spec leaves Taps unset.
	DefaultFIRTaps = 51
)

// Spec describes one filter. Fields not used by a Kind are ignored.
type Spec struct {
	Kind Kind

	// Order is the Butterworth prototype order for lowpass, highpass and
	// bandpass. Zero passes the input through unchanged.
	Order int

	// Cutoff is the -3 dB frequency (Hz) of lowpass, highpass and FIR
	// lowpass/highpass, and the centre frequency of a notch.
	Cutoff float64

	// Low and High are the band edges (Hz) of bandpass and FIR bandpass.
	Low, High float64

	// Q is the notch quality factor. Higher values give a narrower notch.
	Q float64

	// Window is the moving average or median length in samples.
	Window int

	// Taps is the FIR coefficient count.
	Taps int

	// Pass selects the FIR response.
	Pass Pass

	// Causal applies a FIR once, forward, instead of zero-phase. The output
	// then lags the input by (Taps-1)/2 samples.
	Causal bool
}

// String summarises the spec for logs and error messages.
func (s Spec) String() string {
	switch s.Kind {
	case KindLowpass, KindHighpass:
		return fmt.Sprintf("%s(%g Hz, order %d)", s.Kind, s.Cutoff, s.Order)
	case KindBandpass:
		return fmt.Sprintf("%s(%g-%g Hz, order %d)", s.Kind, s.Low, s.High, s.Order)
	case KindNotch:
		return fmt.Sprintf("%s(%g Hz, Q %g)", s.Kind, s.Cutoff, s.Q)
	case KindMovingAverage, KindMedian:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Window)
	case KindFIR:
		if s.Pass == PassBand {
			return fmt.Sprintf("fir-%s(%g-%g Hz, %d taps)", s.Pass, s.Low, s.High, s.Taps)
		}
		return fmt.Sprintf("fir-%s(%g Hz, %d taps)", s.Pass, s.Cutoff, s.Taps)
	default:
		return s.Kind.String()
	}
}

// Lowpass returns a Butterworth lowpass spec.
func Lowpass(cutoff float64, order int) Spec {
	return Spec{Kind: KindLowpass, Cutoff: cutoff, Order: order}
}

// Highpass returns a Butterworth highpass spec.
func Highpass(cutoff float64, order int) Spec {
	return Spec{Kind: KindHighpass, Cutoff: cutoff, Order: order}
}

// Bandpass returns a Butterworth bandpass spec passing [low, high] Hz.
func Bandpass(low, high float64, order int) Spec {
	return Spec{Kind: KindBandpass, Low: low, High: high, Order: order}
}

// Notch returns a notch spec at freq Hz with quality factor q.
func Notch(freq, q float64) Spec {
	return Spec{Kind: KindNotch, Cutoff: freq, Q: q}
}

// MovingAverage returns a moving average spec over window samples.
func MovingAverage(window int) Spec {
	return Spec{Kind: KindMovingAverage, Window: window}
}

// Median returns a median spec over an odd window.
func Median(window int) Spec {
	return Spec{Kind: KindMedian, Window: window}
}

// FIRLowpass returns a windowed-sinc lowpass spec.
func FIRLowpass(taps int, cutoff float64) Spec {
	return Spec{Kind: KindFIR, Pass: PassLow, Taps: taps, Cutoff: cutoff}
}

// FIRHighpass returns a windowed-sinc highpass spec. taps must be odd.
func FIRHighpass(taps int, cutoff float64) Spec {
	return Spec{Kind: KindFIR, Pass: PassHigh, Taps: taps, Cutoff: cutoff}
}

// FIRBandpass returns a windowed-sinc bandpass spec.
func FIRBandpass(taps int, low, high float64) Spec {
	return Spec{Kind: KindFIR, Pass: PassBand, Taps: taps, Low: low, High: high}
}

// PPGConditioning returns the cascade used for photoplethysmograms:
// baseline removal at 0.5 Hz, a 10 Hz lowpass and a mains notch.
func PPGConditioning(mainsHz float64) []Spec {
	return []Spec{
		Highpass(0.5, DefaultOrder),
		Lowpass(10, DefaultOrder),
		Notch(mainsHz, DefaultNotchQ),
	}
}

// ECGConditioning returns the cascade used for electrocardiograms: a
// 0.5-40 Hz bandpass and a mains notch.
func ECGConditioning(mainsHz float64) []Spec {
	return []Spec{
		Bandpass(0.5, 40, DefaultOrder),
		Notch(mainsHz, DefaultNotchQ),
	}
}
