package bank

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/filter/biquad"
	"github.com/cwbudde/algo-vitals/dsp/filter/design"
	"github.com/cwbudde/algo-vitals/dsp/filter/fir"
	"github.com/cwbudde/algo-vitals/dsp/filter/smooth"
	"github.com/cwbudde/algo-vitals/dsp/filter/zerophase"
	"golang.org/x/sync/errgroup"
)

// Bank applies filter specs at a fixed sample rate.
type Bank struct {
	sampleRate  float64
	parallelism int
}

type bankConfig struct {
	parallelism int
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithParallelism bounds the number of channels ApplyChannels filters at
// once. Values < 1 are ignored; the default is unbounded.
func WithParallelism(n int) Option {
	return func(cfg *bankConfig) {
		if n >= 1 {
			cfg.parallelism = n
		}
	}
}

// New returns a Bank for the given sample rate.
func New(sampleRate float64, opts ...Option) (*Bank, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	var cfg bankConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return &Bank{sampleRate: sampleRate, parallelism: cfg.parallelism}, nil
}

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Validate reports whether spec can be realised at the bank's sample rate.
func (b *Bank) Validate(spec Spec) error {
	fs := b.sampleRate

	switch spec.Kind {
	case KindLowpass, KindHighpass:
		if spec.Order < 0 {
			return fmt.Errorf("%w: %s order must be >= 0: %d", core.ErrInvalidParameter, spec.Kind, spec.Order)
		}
		if spec.Order == 0 {
			return nil
		}
		return core.ValidateFrequency(spec.Kind.String()+" cutoff", spec.Cutoff, fs)
	case KindBandpass:
		if spec.Order < 0 {
			return fmt.Errorf("%w: bandpass order must be >= 0: %d", core.ErrInvalidParameter, spec.Order)
		}
		if spec.Order == 0 {
			return nil
		}
		return core.ValidateBand("bandpass", spec.Low, spec.High, fs)
	case KindNotch:
		if !(spec.Q > 0) || math.IsInf(spec.Q, 0) {
			return fmt.Errorf("%w: notch Q must be > 0: %v", core.ErrInvalidParameter, spec.Q)
		}
		return core.ValidateFrequency("notch frequency", spec.Cutoff, fs)
	case KindMovingAverage:
		if spec.Window < 1 {
			return fmt.Errorf("%w: moving average window must be >= 1: %d", core.ErrInvalidParameter, spec.Window)
		}
		return nil
	case KindMedian:
		if spec.Window < 1 || spec.Window%2 == 0 {
			return fmt.Errorf("%w: median window must be odd and >= 1: %d", core.ErrInvalidParameter, spec.Window)
		}
		return nil
	case KindFIR:
		return b.validateFIR(spec)
	default:
		return fmt.Errorf("%w: unknown filter kind %d", core.ErrInvalidParameter, int(spec.Kind))
	}
}

func (b *Bank) validateFIR(spec Spec) error {
	taps := firTaps(spec)
	if taps < 1 {
		return fmt.Errorf("%w: FIR taps must be >= 1: %d", core.ErrInvalidParameter, taps)
	}

	switch spec.Pass {
	case PassLow:
		return core.ValidateFrequency("FIR lowpass cutoff", spec.Cutoff, b.sampleRate)
	case PassHigh:
		if taps%2 == 0 {
			return fmt.Errorf("%w: FIR highpass needs an odd tap count: %d", core.ErrInvalidParameter, taps)
		}
		return core.ValidateFrequency("FIR highpass cutoff", spec.Cutoff, b.sampleRate)
	case PassBand:
		return core.ValidateBand("FIR bandpass", spec.Low, spec.High, b.sampleRate)
	default:
		return fmt.Errorf("%w: unknown FIR pass %d", core.ErrInvalidParameter, int(spec.Pass))
	}
}

// Sections returns the biquad cascade an IIR spec designs to. Order-0 specs
// return an empty cascade. Non-IIR kinds are rejected.
func (b *Bank) Sections(spec Spec) ([]biquad.Coefficients, error) {
	if err := b.Validate(spec); err != nil {
		return nil, err
	}

	fs := b.sampleRate

	switch spec.Kind {
	case KindLowpass:
		return design.ButterworthLP(spec.Cutoff, spec.Order, fs), nil
	case KindHighpass:
		return design.ButterworthHP(spec.Cutoff, spec.Order, fs), nil
	case KindBandpass:
		return design.ButterworthBP(spec.Low, spec.High, spec.Order, fs), nil
	case KindNotch:
		return []biquad.Coefficients{design.Notch(spec.Cutoff, spec.Q, fs)}, nil
	default:
		return nil, fmt.Errorf("%w: %s is not an IIR filter", core.ErrInvalidParameter, spec.Kind)
	}
}

// Taps returns the coefficients a FIR spec designs to.
func (b *Bank) Taps(spec Spec) ([]float64, error) {
	if spec.Kind != KindFIR {
		return nil, fmt.Errorf("%w: %s is not a FIR filter", core.ErrInvalidParameter, spec.Kind)
	}
	if err := b.Validate(spec); err != nil {
		return nil, err
	}

	taps, fs := firTaps(spec), b.sampleRate

	switch spec.Pass {
	case PassHigh:
		return fir.Highpass(taps, spec.Cutoff, fs), nil
	case PassBand:
		return fir.Bandpass(taps, spec.Low, spec.High, fs), nil
	default:
		return fir.Lowpass(taps, spec.Cutoff, fs), nil
	}
}

// Apply filters x with spec and returns a new slice of len(x). x is not
// modified.
func (b *Bank) Apply(x []float64, spec Spec) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: %s: empty input", core.ErrInsufficientData, spec)
	}

	out, err := b.apply(x, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec, err)
	}

	return out, nil
}

func (b *Bank) apply(x []float64, spec Spec) ([]float64, error) {
	switch spec.Kind {
	case KindLowpass, KindHighpass, KindBandpass, KindNotch:
		sections, err := b.Sections(spec)
		if err != nil {
			return nil, err
		}
		return zerophase.IIR(x, sections)
	case KindMovingAverage:
		if err := b.Validate(spec); err != nil {
			return nil, err
		}
		return smooth.MovingAverage(x, spec.Window)
	case KindMedian:
		if err := b.Validate(spec); err != nil {
			return nil, err
		}
		return smooth.Median(x, spec.Window)
	case KindFIR:
		taps, err := b.Taps(spec)
		if err != nil {
			return nil, err
		}
		if spec.Causal {
			return zerophase.FIRCausal(x, taps)
		}
		return zerophase.FIR(x, taps)
	default:
		return nil, b.Validate(spec)
	}
}

// Cascade applies specs in order, feeding each output into the next filter.
// With no specs it returns a copy of x.
func (b *Bank) Cascade(x []float64, specs ...Spec) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty input", core.ErrInsufficientData)
	}

	out := core.Clone(x)
	for _, spec := range specs {
		var err error
		if out, err = b.Apply(out, spec); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ApplyChannels runs Cascade on every channel concurrently. The first error
// cancels the remaining channels and is returned. If ctx is cancelled before
// all channels finish, the results are discarded and ctx.Err() is returned.
func (b *Bank) ApplyChannels(ctx context.Context, channels [][]float64, specs ...Spec) ([][]float64, error) {
	g, gctx := errgroup.WithContext(ctx)
	if b.parallelism > 0 {
		g.SetLimit(b.parallelism)
	}

	out := make([][]float64, len(channels))
	for i, ch := range channels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			y, err := b.Cascade(ch, specs...)
			if err != nil {
				return fmt.Errorf("channel %d: %w", i, err)
			}

			out[i] = y

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func firTaps(spec Spec) int {
	if spec.Taps == 0 {
		return DefaultFIRTaps
	}

	return spec.Taps
}
