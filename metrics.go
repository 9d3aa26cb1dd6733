package callbench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the samples of one run in Prometheus form.
// It uses its own registry so nothing leaks into the default one.
type Metrics struct {
	registry *prometheus.Registry

	IterationSeconds prometheus.Histogram
	Iterations       prometheus.Counter
	GeoMeanSeconds   prometheus.Gauge
}

// NewMetrics creates the run metrics, labelled by benchmark and dispatch.
func NewMetrics(benchmark, dispatch string) *Metrics {
	labels := prometheus.Labels{"benchmark": benchmark, "dispatch": dispatch}

	m := &Metrics{registry: prometheus.NewRegistry()}

	m.IterationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:        "callbench_iteration_seconds",
			Help:        "Elapsed time of one benchmark iteration",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-4, 2, 16),
		},
	)

	m.Iterations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "callbench_iterations_total",
			Help:        "Number of measured iterations",
			ConstLabels: labels,
		},
	)

	m.GeoMeanSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "callbench_geo_mean_seconds",
			Help:        "Geometric mean of the iteration durations",
			ConstLabels: labels,
		},
	)

	m.registry.MustRegister(m.IterationSeconds, m.Iterations, m.GeoMeanSeconds)
	return m
}

// Observe records samples. The geometric mean gauge is left unset when the
// samples contain a non-positive value.
func (m *Metrics) Observe(samples Samples) {
	for _, s := range samples {
		m.IterationSeconds.Observe(s)
	}
	m.Iterations.Add(float64(len(samples)))

	if gm, err := GeometricMean(samples); err == nil {
		m.GeoMeanSeconds.Set(gm)
	}
}

// WriteTextfile writes the metrics in the text exposition format used by
// the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
