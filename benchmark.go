package callbench

import (
	"fmt"
	"log/slog"
)

// Samples holds one elapsed duration per iteration, in execution order, in
// the unit of the timer that produced them.
type Samples []float64

// RunIterations times iterations passes over the fixture. Each pass reads the
// timer, calls fixture.Foo(1, 2, 3, 4) EntryCalls times and reads the timer
// again. The result always has exactly iterations entries.
func RunIterations(iterations int, timer Timer, fixture Fixture) (Samples, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: iteration count must be positive, got %d", ErrConfiguration, iterations)
	}
	if timer == nil {
		return nil, fmt.Errorf("%w: nil timer", ErrTimerSource)
	}
	if fixture == nil {
		return nil, fmt.Errorf("%w: nil fixture", ErrConfiguration)
	}

	samples := make(Samples, 0, iterations)
	for range iterations {
		t0 := timer()
		for range EntryCalls {
			fixture.Foo(1, 2, 3, 4)
		}
		t1 := timer()
		samples = append(samples, t1-t0)
	}
	return samples, nil
}

// Run resolves opts, executes the warmup and measurement phases and returns
// the measured samples. Nothing is written to stdout; a summary is logged.
// A nil logger means slog.Default().
func Run(opts Options, logger *slog.Logger) (Samples, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Every lookup happens before the first timer reading.
	timer, err := LookupTimer(opts.Timer)
	if err != nil {
		return nil, err
	}
	bench, err := Lookup(opts.Benchmark)
	if err != nil {
		return nil, err
	}
	fixture, err := NewFixture(opts.Dispatch)
	if err != nil {
		return nil, err
	}

	log := logger.With("benchmark", bench.Name, "dispatch", opts.Dispatch, "timer", opts.Timer)

	if opts.Warmup > 0 {
		log.Debug("warming up", "iterations", opts.Warmup)
		if _, err := bench.Func(opts.Warmup, timer, fixture); err != nil {
			return nil, fmt.Errorf("warmup: %w", err)
		}
	}

	log.Debug("measuring", "iterations", opts.NumRuns)
	samples, err := bench.Func(opts.NumRuns, timer, fixture)
	if err != nil {
		return nil, fmt.Errorf("benchmark %s: %w", bench.Name, err)
	}

	log.Info("benchmark complete",
		"iterations", len(samples),
		"dispatches_per_iteration", EntryCalls*(CallsPerEntry()+1),
		"stats", CalculateStatistics(samples))
	return samples, nil
}
