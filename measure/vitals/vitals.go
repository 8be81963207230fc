package vitals

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/spectrum"
	frequencystats "github.com/cwbudde/algo-vitals/stats/frequency"
	"gonum.org/v1/gonum/stat"
)

// HeartRate is a frequency-domain heart rate estimate.
type HeartRate struct {
	BPM         float64
	FrequencyHz float64
	// Confidence is the peak magnitude over the mean magnitude of the whole
	// spectrum. Values well above 1 indicate a clear pulse.
	Confidence float64
}

// Quality summarises how clean a biosignal looks.
type Quality struct {
	Entropy  float64 // bits; low for a periodic signal, high for noise
	Flatness float64 // 0 tonal .. 1 white
	Centroid float64 // Hz
	Mains    float64 // amplitude at the mains frequency; 0 when disabled
}

// Analyzer extracts vital signs from signals sampled at a fixed rate.
// It holds no per-signal state and is safe for concurrent use.
type Analyzer struct {
	sampleRate float64
	cfg        config
}

// NewAnalyzer creates an analyzer for signals sampled at sampleRate Hz.
func NewAnalyzer(sampleRate float64, opts ...Option) (*Analyzer, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if cfg.mains >= core.Nyquist(sampleRate) {
		return nil, fmt.Errorf("%w: mains frequency %g Hz at or above Nyquist %g Hz",
			core.ErrInvalidParameter, cfg.mains, core.Nyquist(sampleRate))
	}

	return &Analyzer{sampleRate: sampleRate, cfg: cfg}, nil
}

// SampleRate returns the configured sample rate in Hz.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// HeartRate returns the dominant frequency in the heart band as beats per
// minute. A band without bins yields a zero estimate and no error.
func (a *Analyzer) HeartRate(x []float64) (HeartRate, error) {
	est, err := spectrum.Compute(x, a.sampleRate)
	if err != nil {
		return HeartRate{}, err
	}

	freq, mag := spectrum.DominantFrequency(est, a.cfg.heartLow, a.cfg.heartHigh)

	hr := HeartRate{BPM: freq * 60, FrequencyHz: freq}
	if mean := stat.Mean(est.Magnitude, nil); mean > 0 {
		hr.Confidence = mag / mean
	}

	return hr, nil
}

// RespirationRate returns the dominant frequency in the respiration band as
// breaths per minute.
func (a *Analyzer) RespirationRate(x []float64) (float64, error) {
	freq, _, err := a.DominantFrequency(x, a.cfg.respLow, a.cfg.respHigh)
	if err != nil {
		return 0, err
	}
	return freq * 60, nil
}

// DominantFrequency returns the strongest spectral component of x with
// low <= f <= high.
func (a *Analyzer) DominantFrequency(x []float64, low, high float64) (freq, mag float64, err error) {
	if !(low >= 0) || !(low <= high) {
		return 0, 0, fmt.Errorf("%w: search band [%g, %g] Hz", core.ErrInvalidParameter, low, high)
	}

	est, err := spectrum.Compute(x, a.sampleRate)
	if err != nil {
		return 0, 0, err
	}

	freq, mag = spectrum.DominantFrequency(est, low, high)
	return freq, mag, nil
}

// PSD returns the Welch power spectral density used by the quality metrics.
func (a *Analyzer) PSD(x []float64) (spectrum.PSD, error) {
	return spectrum.Welch(x, a.sampleRate, spectrum.WithSegmentLength(a.cfg.segment))
}

// SpectralEntropy returns the Shannon entropy in bits of the normalised
// Welch PSD of x.
func (a *Analyzer) SpectralEntropy(x []float64) (float64, error) {
	psd, err := a.PSD(x)
	if err != nil {
		return 0, err
	}
	return frequencystats.Entropy(psd.Power), nil
}

// Quality computes spectral entropy, flatness and centroid from the Welch
// PSD of x, plus the mains amplitude when enabled.
func (a *Analyzer) Quality(x []float64) (Quality, error) {
	psd, err := a.PSD(x)
	if err != nil {
		return Quality{}, err
	}

	q := Quality{
		Entropy:  frequencystats.Entropy(psd.Power),
		Flatness: frequencystats.Flatness(psd.Power),
		Centroid: frequencystats.Centroid(psd.Frequencies, psd.Power),
	}

	if a.cfg.mains > 0 {
		q.Mains, err = spectrum.ToneAmplitude(x, a.cfg.mains, a.sampleRate)
		if err != nil {
			return Quality{}, err
		}
	}

	return q, nil
}
