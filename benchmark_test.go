package callbench

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

// fixedIncrementTimer returns 0, 1, 2, ... on successive calls.
func fixedIncrementTimer() Timer {
	var next float64
	return func() float64 {
		now := next
		next++
		return now
	}
}

// entryCounter counts calls to Foo and does nothing else.
type entryCounter struct {
	calls int
}

func (e *entryCounter) Foo(a, b, c, d int) {
	e.calls++
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestRunIterations_FixedIncrementTimer verifies each sample is end minus start.
func TestRunIterations_FixedIncrementTimer(t *testing.T) {
	samples, err := RunIterations(3, fixedIncrementTimer(), &entryCounter{})
	if err != nil {
		t.Fatalf("RunIterations failed: %v", err)
	}

	AssertSamplesEqual(t, samples, Samples{1, 1, 1})
}

// TestRunIterations_SampleCount verifies one sample per iteration.
func TestRunIterations_SampleCount(t *testing.T) {
	for _, n := range []int{1, 2, 7, 50} {
		counter := &entryCounter{}

		samples, err := RunIterations(n, fixedIncrementTimer(), counter)
		if err != nil {
			t.Fatalf("N=%d: RunIterations failed: %v", n, err)
		}

		AssertSampleCount(t, samples, n)
		if counter.calls != n*EntryCalls {
			t.Errorf("N=%d: expected %d entry calls, got %d", n, n*EntryCalls, counter.calls)
		}
	}
}

// TestRunIterations_CallChain runs the real chain on the monotonic clock.
func TestRunIterations_CallChain(t *testing.T) {
	timer, err := LookupTimer("monotonic")
	if err != nil {
		t.Fatalf("LookupTimer failed: %v", err)
	}

	samples, err := RunIterations(3, timer, NewCallChain())
	if err != nil {
		t.Fatalf("RunIterations failed: %v", err)
	}

	AssertSampleCount(t, samples, 3)
	AssertNonNegative(t, samples)
	t.Logf("Samples: %v", samples)
}

// TestRunIterations_InvalidCount verifies non-positive counts are rejected.
func TestRunIterations_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := RunIterations(n, fixedIncrementTimer(), &entryCounter{})
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("N=%d: expected ErrConfiguration, got %v", n, err)
		}
	}
}

// TestRun_WarmupAndMeasure verifies warmup iterations are not reported.
func TestRun_WarmupAndMeasure(t *testing.T) {
	opts := DefaultOptions()
	opts.NumRuns = 2
	opts.Warmup = 1
	opts.Timer = "monotonic"

	samples, err := Run(opts, discardLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	AssertSampleCount(t, samples, 2)
	AssertNonNegative(t, samples)
}

// TestRun_ResolvesBeforeMeasuring verifies lookup failures stop the run
// before the benchmark function is entered.
func TestRun_ResolvesBeforeMeasuring(t *testing.T) {
	entered := false
	Register(Benchmark{
		Name: "probe",
		Func: func(iterations int, timer Timer, fixture Fixture) (Samples, error) {
			entered = true
			return make(Samples, iterations), nil
		},
	})

	tests := []struct {
		name   string
		modify func(*Options)
		want   error
	}{
		{"unknown timer", func(o *Options) { o.Timer = "sundial" }, ErrTimerSource},
		{"unknown dispatch", func(o *Options) { o.Dispatch = "carrier-pigeon" }, ErrConfiguration},
		{"zero runs", func(o *Options) { o.NumRuns = 0 }, ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Benchmark = "probe"
			tt.modify(&opts)

			_, err := Run(opts, discardLogger())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if entered {
				t.Error("benchmark ran despite invalid options")
			}
		})
	}
}

// TestRun_UnknownBenchmark verifies the benchmark name is checked.
func TestRun_UnknownBenchmark(t *testing.T) {
	opts := DefaultOptions()
	opts.Benchmark = "richards"

	_, err := Run(opts, discardLogger())
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
