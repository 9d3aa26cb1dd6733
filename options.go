package callbench

import "fmt"

// Options controls a benchmark run. It is resolved once at startup.
type Options struct {
	Benchmark   string // Registered benchmark name (default "calls")
	NumRuns     int    // Measured iterations, must be positive
	Timer       string // Timer name, see TimerNames
	TakeGeoMean bool   // Report the geometric mean instead of every sample
	Dispatch    string // Dispatch variant, see DispatchNames
	Warmup      int    // Unrecorded priming iterations before measurement
	ChartPath   string // Optional HTML chart of the samples
	MetricsPath string // Optional Prometheus textfile of the samples
}

// DefaultOptions returns the defaults used by the command line.
func DefaultOptions() Options {
	return Options{
		Benchmark: "calls",
		NumRuns:   100,
		Timer:     "time",
		Dispatch:  DispatchMethod,
	}
}

// Validate checks the options that can be judged without lookups.
// Timer, benchmark and dispatch names are checked when they are resolved.
func (o Options) Validate() error {
	if o.NumRuns <= 0 {
		return fmt.Errorf("%w: num_runs must be a positive integer, got %d", ErrConfiguration, o.NumRuns)
	}
	if o.Warmup < 0 {
		return fmt.Errorf("%w: warmup must not be negative, got %d", ErrConfiguration, o.Warmup)
	}
	if o.Benchmark == "" {
		return fmt.Errorf("%w: no benchmark selected", ErrConfiguration)
	}
	return nil
}
