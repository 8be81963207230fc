package main

import (
	"context"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Duration = 20
	return cfg
}

func runObserved(t *testing.T, cfg Config, names ...string) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	if err := runScenarios(context.Background(), zap.New(core), cfg, names); err != nil {
		t.Fatalf("runScenarios(%v): %v", names, err)
	}
	return logs
}

func field(t *testing.T, e observer.LoggedEntry, key string) float64 {
	t.Helper()

	v, ok := e.ContextMap()[key]
	if !ok {
		t.Fatalf("entry %q has no field %s", e.Message, key)
	}
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		t.Fatalf("field %s has type %T", key, v)
		return 0
	}
}

func only(t *testing.T, logs *observer.ObservedLogs, msg string) observer.LoggedEntry {
	t.Helper()

	entries := logs.FilterMessage(msg).All()
	if len(entries) != 1 {
		t.Fatalf("got %d %q entries, want 1", len(entries), msg)
	}
	return entries[0]
}

func TestPPGScenario(t *testing.T) {
	logs := runObserved(t, testConfig(), "ppg")

	noise := only(t, logs, "noise analysis")
	if field(t, noise, "noise_after") >= field(t, noise, "noise_before") {
		t.Fatal("filtering should reduce noise")
	}

	hr := logs.FilterMessage("heart rate").FilterField(zap.String("signal", "filtered")).All()
	if len(hr) != 1 {
		t.Fatalf("got %d filtered heart rate entries", len(hr))
	}
	if bpm := field(t, hr[0], "bpm"); math.Abs(bpm-72) > 3 {
		t.Fatalf("filtered bpm = %v, want 72", bpm)
	}
	if logs.FilterMessage("signal quality").Len() != 2 {
		t.Fatal("want one quality entry per signal")
	}
}

func TestECGScenario(t *testing.T) {
	cfg := testConfig()
	cfg.HeartRate = 80

	e := only(t, runObserved(t, cfg, "ecg"), "QRS detection")
	if bpm := field(t, e, "bpm"); math.Abs(bpm-80) > 2 {
		t.Fatalf("bpm = %v, want about 80", bpm)
	}
	if peaks := field(t, e, "peaks"); peaks < 20 {
		t.Fatalf("peaks = %v", peaks)
	}
}

func TestRespirationScenario(t *testing.T) {
	e := only(t, runObserved(t, testConfig(), "resp"), "respiration rate")
	if rate := field(t, e, "breaths_per_min"); math.Abs(rate-15) > 3 {
		t.Fatalf("rate = %v, want 15", rate)
	}
}

func TestStreamScenario(t *testing.T) {
	logs := runObserved(t, testConfig(), "stream")

	if n := logs.FilterMessage("window").Len(); n != 20 {
		t.Fatalf("got %d window entries, want 20", n)
	}
	if w := field(t, only(t, logs, "stream processed"), "windows"); w != 20 {
		t.Fatalf("windows = %v, want 20", w)
	}
}

func TestLMSScenario(t *testing.T) {
	e := only(t, runObserved(t, testConfig(), "lms"), "adaptive cancellation")
	if field(t, e, "noise_after") >= field(t, e, "noise_before") {
		t.Fatal("LMS should reduce interference")
	}
}

func TestRunScenariosCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runScenarios(ctx, zap.NewNop(), testConfig(), scenarioNames); err == nil {
		t.Fatal("cancelled context should stop the run")
	}
}
