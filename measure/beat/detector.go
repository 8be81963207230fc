package beat

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Detector defaults: half the global maximum, and at most 200 BPM.
const (
	DefaultThresholdRatio = 0.5
	DefaultRefractory     = 0.3 // seconds
)

// Option configures a Detector or Tracker.
type Option func(*config)

type config struct {
	ratio      float64
	refractory float64
}

// WithThresholdRatio sets the detection threshold as a fraction of the
// signal maximum. Values outside (0, 1] are ignored.
func WithThresholdRatio(r float64) Option {
	return func(cfg *config) {
		if r > 0 && r <= 1 {
			cfg.ratio = r
		}
	}
}

// WithRefractory sets the minimum time between accepted beats in seconds.
// Negative values are ignored.
func WithRefractory(seconds float64) Option {
	return func(cfg *config) {
		if seconds >= 0 {
			cfg.refractory = seconds
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{ratio: DefaultThresholdRatio, refractory: DefaultRefractory}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// Detector finds beats as thresholded local maxima separated by a
// refractory period.
type Detector struct {
	sampleRate float64
	cfg        config
	minGap     float64 // samples
}

// NewDetector creates a detector for signals sampled at sampleRate Hz.
func NewDetector(sampleRate float64, opts ...Option) (*Detector, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	return &Detector{
		sampleRate: sampleRate,
		cfg:        cfg,
		minGap:     cfg.refractory * sampleRate,
	}, nil
}

// SampleRate returns the configured sample rate in Hz.
func (d *Detector) SampleRate() float64 { return d.sampleRate }

// Threshold returns the detection threshold Detect would use on x.
func (d *Detector) Threshold(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return d.cfg.ratio * floats.Max(x)
}

// Detect returns the indices of the beats in x in increasing order. Index
// i in [1, N-2] is a beat when x[i] exceeds the threshold and both
// neighbours, and lies more than the refractory period after the previous
// beat. Inputs shorter than 3 samples have no beats.
func (d *Detector) Detect(x []float64) []int {
	if len(x) < 3 {
		return nil
	}

	threshold := d.Threshold(x)

	var peaks []int
	for i := 1; i < len(x)-1; i++ {
		v := x[i]
		if v <= threshold || v <= x[i-1] || v <= x[i+1] {
			continue
		}
		if len(peaks) > 0 && float64(i-peaks[len(peaks)-1]) <= d.minGap {
			continue
		}
		peaks = append(peaks, i)
	}

	return peaks
}

// Analyze detects beats and summarises them.
func (d *Detector) Analyze(x []float64) (Summary, error) {
	if len(x) == 0 {
		return Summary{}, fmt.Errorf("%w: beat detection on empty input", core.ErrInsufficientData)
	}

	peaks := d.Detect(x)
	s := Summary{Peaks: peaks}

	if bpm, ok := Rate(peaks, d.sampleRate); ok {
		s.BPM = bpm
		s.MeanInterval = 60 / bpm
		s.IntervalStd = intervalStd(Intervals(peaks, d.sampleRate))
		s.Valid = true
	}

	return s, nil
}
