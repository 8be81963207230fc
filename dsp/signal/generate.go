// Package signal generates deterministic test and demo signals: plain
// sines and noise plus simulated PPG, ECG and respiration waveforms.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

// Default mains interference injected into simulated ECGs.
const (
	DefaultMainsFrequency = 50.0
	DefaultMainsAmplitude = 0.05
)

// Generator creates deterministic signals from a shared configuration.
// Every call draws its noise from a fresh source seeded with the
// generator seed, so repeated calls return identical signals.
type Generator struct {
	cfg       core.ProcessorConfig
	seed      int64
	mainsFreq float64
	mainsAmp  float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithMains sets the frequency and amplitude of the mains interference
// added to simulated ECGs. A zero amplitude disables it; invalid values
// are ignored.
func WithMains(freqHz, amplitude float64) Option {
	return func(g *Generator) {
		if freqHz > 0 && amplitude >= 0 {
			g.mainsFreq = freqHz
			g.mainsAmp = amplitude
		}
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:       core.ApplyProcessorOptions(coreOpts...),
		seed:      1,
		mainsFreq: DefaultMainsFrequency,
		mainsAmp:  DefaultMainsAmplitude,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Samples returns the sample count floor(sampleRate*duration).
func (g *Generator) Samples(duration float64) int {
	return int(math.Floor(g.cfg.SampleRate * duration))
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: sine samples must be > 0: %d", core.ErrInvalidParameter, samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic uniform white noise in
// [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples must be > 0: %d", core.ErrInvalidParameter, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", core.ErrInvalidParameter, amplitude)
	}
	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) rng() *rand.Rand {
	return rand.New(rand.NewSource(g.seed))
}

// addGaussian adds zero-mean Gaussian noise with the given standard
// deviation to dst.
func (g *Generator) addGaussian(dst []float64, std float64) {
	if std == 0 {
		return
	}
	rng := g.rng()
	for i := range dst {
		dst[i] += std * rng.NormFloat64()
	}
}
