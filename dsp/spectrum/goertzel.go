package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

// Goertzel evaluates a single DFT term over the samples processed since the
// last Reset. It is cheaper than a full FFT when only one known frequency
// matters, such as mains pickup at 50 or 60 Hz.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	count      int
}

// NewGoertzel creates an analyzer for 0 <= frequency <= sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("%w: goertzel frequency %v outside [0, %v]",
			core.ErrInvalidParameter, frequency, sampleRate/2)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
	g.count = 0
}

// ProcessSample updates the state with one sample.
func (g *Goertzel) ProcessSample(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.count++
}

// ProcessBlock updates the state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.count += len(input)
}

// Power returns |X|^2 for the processed block.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Amplitude returns the peak amplitude of a sinusoid at the target
// frequency, 2*|X|/N. It is exact when the block holds a whole number of
// cycles.
func (g *Goertzel) Amplitude() float64 {
	p := g.Power()
	if p <= 0 || g.count == 0 {
		return 0
	}

	return 2 * math.Sqrt(p) / float64(g.count)
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// ToneAmplitude returns the amplitude of the frequency component of x in one
// shot.
func ToneAmplitude(x []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	if len(x) == 0 {
		return 0, fmt.Errorf("%w: tone amplitude of empty input", core.ErrInsufficientData)
	}

	g.ProcessBlock(x)

	return g.Amplitude(), nil
}
