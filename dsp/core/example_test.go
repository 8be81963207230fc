package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(250),
		core.WithWindowSize(750),
	)

	fmt.Printf("sampleRate=%.0f windowSize=%d\n", cfg.SampleRate, cfg.WindowSize)

	// Output:
	// sampleRate=250 windowSize=750
}

func ExampleValidateFrequency() {
	err := core.ValidateFrequency("cutoff", 250, 500)
	fmt.Println(errors.Is(err, core.ErrInvalidParameter))

	// Output:
	// true
}
