package callbench

import (
	"testing"
)

// TestCalculateStatistics verifies percentile calculations.
func TestCalculateStatistics(t *testing.T) {
	samples := Samples{500e-6, 100e-6, 400e-6, 200e-6, 300e-6}

	stats := CalculateStatistics(samples)

	// P50 should be 300µs (middle value)
	if stats.P50 != 300e-6 {
		t.Errorf("P50: expected 300µs, got %v", stats.P50)
	}

	if diff := stats.Mean - 300e-6; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Mean: expected 300µs, got %v", stats.Mean)
	}

	if stats.Min != 100e-6 || stats.Max != 500e-6 {
		t.Errorf("Range: expected [100µs, 500µs], got [%v, %v]", stats.Min, stats.Max)
	}

	// Input must not be reordered
	if samples[0] != 500e-6 {
		t.Errorf("CalculateStatistics sorted its input: %v", samples)
	}

	t.Logf("Stats: mean=%v, stddev=%v, p50=%v, p95=%v, p99=%v",
		stats.Mean, stats.Stddev, stats.P50, stats.P95, stats.P99)
}

// TestCalculateStatistics_Empty verifies empty input yields the zero value.
func TestCalculateStatistics_Empty(t *testing.T) {
	if stats := CalculateStatistics(nil); stats != (Statistics{}) {
		t.Errorf("Expected zero Statistics, got %+v", stats)
	}
}

// TestCalculateStatistics_Constant verifies zero spread for identical samples.
func TestCalculateStatistics_Constant(t *testing.T) {
	stats := CalculateStatistics(Samples{1, 1, 1, 1})

	if stats.Stddev != 0 {
		t.Errorf("Stddev: expected 0, got %v", stats.Stddev)
	}
	if stats.P99 != 1 {
		t.Errorf("P99: expected 1, got %v", stats.P99)
	}
}
