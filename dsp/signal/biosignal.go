package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

// Baseline wander added to simulated PPGs.
const (
	driftAmplitude = 0.2
	driftFrequency = 0.1
)

// PPG simulates a photoplethysmogram: a pulse made of the first three
// harmonics of bpm/60 Hz with amplitudes 1, 1/2 and 1/4. The noisy output
// adds Gaussian noise of standard deviation noise and a slow baseline
// drift. Sample i is taken at i/sampleRate seconds.
func (g *Generator) PPG(duration, bpm, noise float64) (noisy, clean []float64, err error) {
	n, err := g.biosignalLength("ppg", duration, bpm, noise)
	if err != nil {
		return nil, nil, err
	}

	f0 := bpm / 60
	fs := g.cfg.SampleRate

	clean = make([]float64, n)
	noisy = make([]float64, n)
	for i := range clean {
		t := float64(i) / fs
		clean[i] = math.Sin(2*math.Pi*f0*t) +
			0.5*math.Sin(2*math.Pi*2*f0*t) +
			0.25*math.Sin(2*math.Pi*3*f0*t)
		noisy[i] = clean[i] + driftAmplitude*math.Sin(2*math.Pi*driftFrequency*t)
	}
	g.addGaussian(noisy, noise)

	return noisy, clean, nil
}

// Respiration simulates a breathing signal, a sinusoid at rate/60 Hz,
// with additive Gaussian noise.
func (g *Generator) Respiration(duration, rate, noise float64) (noisy, clean []float64, err error) {
	n, err := g.biosignalLength("respiration", duration, rate, noise)
	if err != nil {
		return nil, nil, err
	}

	step := 2 * math.Pi * (rate / 60) / g.cfg.SampleRate

	clean = make([]float64, n)
	for i := range clean {
		clean[i] = math.Sin(step * float64(i))
	}
	noisy = core.Clone(clean)
	g.addGaussian(noisy, noise)

	return noisy, clean, nil
}

// ECG simulates a simplified electrocardiogram from a piecewise P, QRS and
// T template repeated every 60/bpm seconds. The noisy output adds Gaussian
// noise and mains interference (see [WithMains]).
func (g *Generator) ECG(duration, bpm, noise float64) (noisy, clean []float64, err error) {
	n, err := g.biosignalLength("ecg", duration, bpm, noise)
	if err != nil {
		return nil, nil, err
	}

	period := 60 / bpm
	fs := g.cfg.SampleRate

	clean = make([]float64, n)
	noisy = make([]float64, n)
	for i := range clean {
		t := float64(i) / fs
		clean[i] = ecgTemplate(math.Mod(t, period) / period)
		noisy[i] = clean[i] + g.mainsAmp*math.Sin(2*math.Pi*g.mainsFreq*t)
	}
	g.addGaussian(noisy, noise)

	return noisy, clean, nil
}

// ecgTemplate evaluates one beat at phase p in [0, 1). The R peak of 1.0
// sits at p = 0.4.
func ecgTemplate(p float64) float64 {
	switch {
	case p > 0.1 && p < 0.2: // P wave
		return 0.25 * math.Sin((p-0.1)*10*math.Pi)
	case p > 0.35 && p < 0.45: // QRS
		q := (p - 0.35) * 10
		switch {
		case q < 0.3:
			return -0.2 * q / 0.3
		case q < 0.5:
			return -0.2 + 1.2*(q-0.3)/0.2
		case q < 0.7:
			return 1.0 - 1.3*(q-0.5)/0.2
		default:
			return -0.3 + 0.3*(q-0.7)/0.3
		}
	case p > 0.55 && p < 0.7: // T wave
		return 0.35 * math.Sin((p-0.55)*6.67*math.Pi)
	default:
		return 0
	}
}

func (g *Generator) biosignalLength(name string, duration, rate, noise float64) (int, error) {
	if !(duration > 0) {
		return 0, fmt.Errorf("%w: %s duration must be > 0: %g", core.ErrInvalidParameter, name, duration)
	}
	if !(rate > 0) {
		return 0, fmt.Errorf("%w: %s rate must be > 0: %g", core.ErrInvalidParameter, name, rate)
	}
	if !(noise >= 0) {
		return 0, fmt.Errorf("%w: %s noise must be >= 0: %g", core.ErrInvalidParameter, name, noise)
	}

	n := g.Samples(duration)
	if n < 1 {
		return 0, fmt.Errorf("%w: %s of %g s at %g Hz has no samples",
			core.ErrInsufficientData, name, duration, g.cfg.SampleRate)
	}
	return n, nil
}
