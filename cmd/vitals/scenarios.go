package main

import (
	"context"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/adaptive"
	"github.com/cwbudde/algo-vitals/dsp/buffer"
	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/filter/bank"
	"github.com/cwbudde/algo-vitals/dsp/filter/smooth"
	"github.com/cwbudde/algo-vitals/dsp/signal"
	"github.com/cwbudde/algo-vitals/measure/beat"
	"github.com/cwbudde/algo-vitals/measure/vitals"
	timestats "github.com/cwbudde/algo-vitals/stats/time"
	"go.uber.org/zap"
)

type scenarioFunc func(ctx context.Context, log *zap.Logger, cfg Config) error

var scenarios = map[string]scenarioFunc{
	"ppg":    runPPG,
	"ecg":    runECG,
	"resp":   runRespiration,
	"stream": runStream,
	"lms":    runLMS,
}

// Streaming beat tracking on the running average, at most 180 BPM.
const (
	streamSmoothing  = 0.02
	streamThreshold  = 0.5
	streamRefractory = 1.0 / 3
)

// Interference injected for the LMS scenario.
const (
	interferenceAmplitude = 0.5
	interferencePhase     = 0.7
)

func newGenerator(cfg Config) *signal.Generator {
	return signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{
			core.WithSampleRate(cfg.SampleRate),
			core.WithWindowSize(cfg.WindowSamples()),
		},
		signal.WithSeed(cfg.Seed),
		signal.WithMains(cfg.MainsFrequency, signal.DefaultMainsAmplitude),
	)
}

func runPPG(ctx context.Context, log *zap.Logger, cfg Config) error {
	noisy, clean, err := newGenerator(cfg).PPG(cfg.Duration, cfg.HeartRate, cfg.Noise.PPG)
	if err != nil {
		return err
	}
	log.Info("generated PPG",
		zap.Int("samples", len(noisy)),
		zap.Float64("true_bpm", cfg.HeartRate))

	b, err := bank.New(cfg.SampleRate)
	if err != nil {
		return err
	}

	specs := bank.PPGConditioning(cfg.MainsFrequency)
	for _, s := range specs {
		log.Debug("filter stage", zap.Stringer("spec", s))
	}

	out, err := b.ApplyChannels(ctx, [][]float64{noisy}, specs...)
	if err != nil {
		return err
	}
	filtered := out[0]

	before, err := timestats.ResidualNoise(noisy, clean)
	if err != nil {
		return err
	}
	after, err := timestats.ResidualNoise(filtered, clean)
	if err != nil {
		return err
	}
	log.Info("noise analysis",
		zap.Float64("noise_before", before),
		zap.Float64("noise_after", after),
		zap.Float64("reduction_pct", timestats.NoiseReduction(before, after)))

	a, err := vitals.NewAnalyzer(cfg.SampleRate, vitals.WithMainsFrequency(cfg.MainsFrequency))
	if err != nil {
		return err
	}

	for _, in := range []struct {
		name string
		x    []float64
	}{
		{name: "noisy", x: noisy},
		{name: "filtered", x: filtered},
	} {
		hr, err := a.HeartRate(in.x)
		if err != nil {
			return err
		}
		q, err := a.Quality(in.x)
		if err != nil {
			return err
		}

		log.Info("heart rate",
			zap.String("signal", in.name),
			zap.Float64("bpm", hr.BPM),
			zap.Float64("confidence", hr.Confidence),
			zap.Float64("error_bpm", math.Abs(hr.BPM-cfg.HeartRate)))
		log.Info("signal quality",
			zap.String("signal", in.name),
			zap.Float64("entropy_bits", q.Entropy),
			zap.Float64("flatness", q.Flatness),
			zap.Float64("centroid_hz", q.Centroid),
			zap.Float64("mains", q.Mains))
	}

	return nil
}

func runECG(_ context.Context, log *zap.Logger, cfg Config) error {
	noisy, _, err := newGenerator(cfg).ECG(cfg.Duration, cfg.HeartRate, cfg.Noise.ECG)
	if err != nil {
		return err
	}

	b, err := bank.New(cfg.SampleRate)
	if err != nil {
		return err
	}

	filtered, err := b.Cascade(noisy, bank.ECGConditioning(cfg.MainsFrequency)...)
	if err != nil {
		return err
	}

	d, err := beat.NewDetector(cfg.SampleRate)
	if err != nil {
		return err
	}

	s, err := d.Analyze(filtered)
	if err != nil {
		return err
	}

	if !s.Valid {
		log.Warn("too few beats for a rate", zap.Int("peaks", len(s.Peaks)))
		return nil
	}

	log.Info("QRS detection",
		zap.Int("peaks", len(s.Peaks)),
		zap.Float64("mean_rr_ms", s.MeanInterval*1000),
		zap.Float64("rr_std_ms", s.IntervalStd*1000),
		zap.Float64("bpm", s.BPM),
		zap.Float64("true_bpm", cfg.HeartRate))

	return nil
}

func runRespiration(_ context.Context, log *zap.Logger, cfg Config) error {
	noisy, _, err := newGenerator(cfg).Respiration(cfg.Duration, cfg.RespirationRate, cfg.Noise.Respiration)
	if err != nil {
		return err
	}

	b, err := bank.New(cfg.SampleRate)
	if err != nil {
		return err
	}

	filtered, err := b.Apply(noisy, bank.Lowpass(1, bank.DefaultOrder))
	if err != nil {
		return err
	}

	a, err := vitals.NewAnalyzer(cfg.SampleRate)
	if err != nil {
		return err
	}

	rate, err := a.RespirationRate(filtered)
	if err != nil {
		return err
	}

	log.Info("respiration rate",
		zap.Float64("breaths_per_min", rate),
		zap.Float64("true_rate", cfg.RespirationRate),
		zap.Float64("resolution", 60/cfg.Duration))

	return nil
}

func runStream(_ context.Context, log *zap.Logger, cfg Config) error {
	noisy, _, err := newGenerator(cfg).PPG(cfg.Duration, cfg.HeartRate, cfg.Noise.PPG)
	if err != nil {
		return err
	}

	avg, err := smooth.NewRunning(max(1, int(streamSmoothing*cfg.SampleRate)))
	if err != nil {
		return err
	}

	tracker, err := beat.NewTracker(cfg.SampleRate, streamThreshold, beat.WithRefractory(streamRefractory))
	if err != nil {
		return err
	}

	var (
		overall timestats.Streaming
		index   int
	)

	size := cfg.WindowSamples()
	w, err := buffer.NewWindower(size, size, func(win []float64) {
		index++
		overall.Update(win)
		log.Info("window",
			zap.Int("index", index),
			zap.Float64("mean", timestats.DC(win)),
			zap.Float64("std", timestats.Std(win)),
			zap.Float64("running_average", avg.Average()))
	})
	if err != nil {
		return err
	}

	var beats []int
	for _, x := range noisy {
		w.Push(x)
		if i, ok := tracker.Push(avg.Process(x)); ok {
			beats = append(beats, i)
		}
	}

	fields := []zap.Field{
		zap.Int("windows", w.Emitted()),
		zap.Float64("mean", overall.Mean()),
		zap.Float64("std", overall.Std()),
		zap.Int("beats", tracker.Beats()),
	}
	if bpm, ok := beat.Rate(beats, cfg.SampleRate); ok {
		fields = append(fields, zap.Float64("bpm", bpm))
	}
	log.Info("stream processed", fields...)

	return nil
}

func runLMS(_ context.Context, log *zap.Logger, cfg Config) error {
	g := newGenerator(cfg)

	_, clean, err := g.PPG(cfg.Duration, cfg.HeartRate, 0)
	if err != nil {
		return err
	}

	reference, err := g.Sine(cfg.MainsFrequency, 1, len(clean))
	if err != nil {
		return err
	}

	step := 2 * math.Pi * cfg.MainsFrequency / cfg.SampleRate
	primary := make([]float64, len(clean))
	for i := range primary {
		primary[i] = clean[i] + interferenceAmplitude*math.Sin(step*float64(i)+interferencePhase)
	}

	lms, err := adaptive.NewLMS(cfg.LMS.Taps, cfg.LMS.Step)
	if err != nil {
		return err
	}

	out, err := lms.Process(primary, reference)
	if err != nil {
		return err
	}

	// Judge the second half, after the weights have converged.
	half := len(clean) / 2
	before, err := timestats.ResidualNoise(primary[half:], clean[half:])
	if err != nil {
		return err
	}
	after, err := timestats.ResidualNoise(out[half:], clean[half:])
	if err != nil {
		return err
	}

	log.Info("adaptive cancellation",
		zap.Int("taps", lms.Taps()),
		zap.Float64("step", lms.Step()),
		zap.Float64("noise_before", before),
		zap.Float64("noise_after", after),
		zap.Float64("reduction_pct", timestats.NoiseReduction(before, after)))

	return nil
}
