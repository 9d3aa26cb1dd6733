package callbench

import (
	"math"
	"testing"
)

// AssertSampleCount verifies one sample was recorded per requested iteration.
func AssertSampleCount(t *testing.T, samples Samples, iterations int) {
	t.Helper()

	if len(samples) != iterations {
		t.Errorf("Sample count mismatch: got %d, want %d\n"+
			"Every iteration must append exactly one duration.",
			len(samples), iterations)
		return
	}

	t.Logf("✓ %d samples for %d iterations", len(samples), iterations)
}

// AssertNonNegative verifies no sample is negative or NaN.
//
// Holds for any timer whose readings never decrease. The wall clock can be
// stepped backwards, so use the monotonic timer when asserting this.
func AssertNonNegative(t *testing.T, samples Samples) {
	t.Helper()

	for i, s := range samples {
		if s < 0 || math.IsNaN(s) {
			t.Errorf("Sample %d is %v\n"+
				"Durations from a non-decreasing timer cannot be negative.", i, s)
			return
		}
	}

	t.Logf("✓ All %d samples non-negative", len(samples))
}

// AssertSamplesEqual verifies got matches want value for value, in order.
func AssertSamplesEqual(t *testing.T, got, want Samples) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("Sample count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
