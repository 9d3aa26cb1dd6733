package callbench

import (
	"log/slog"
	"math"
	"sort"
)

// Statistics summarises a set of samples.
type Statistics struct {
	Mean   float64
	Stddev float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
	P99    float64
}

// CalculateStatistics computes mean, spread and percentiles.
// An empty input yields the zero value.
func CalculateStatistics(samples Samples) Statistics {
	if len(samples) == 0 {
		return Statistics{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, s := range sorted {
		sum += s
	}
	mean := sum / float64(len(sorted))

	// Population standard deviation
	var variance float64
	for _, s := range sorted {
		diff := s - mean
		variance += diff * diff
	}
	stddev := math.Sqrt(variance / float64(len(sorted)))

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P50:    sorted[len(sorted)*50/100],
		P95:    sorted[len(sorted)*95/100],
		P99:    sorted[len(sorted)*99/100],
	}
}

// LogValue implements slog.LogValuer.
func (s Statistics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.Stddev),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("p50", s.P50),
		slog.Float64("p95", s.P95),
		slog.Float64("p99", s.P99),
	)
}
