package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mcp-rss-crawler/internal/pkg/config"
)

// WorkerMetrics provides Prometheus metrics for the feed refresh worker.
// It embeds the standard ConfigMetrics for configuration monitoring and
// adds scheduler-specific metrics for refresh run tracking.
//
// Worker-specific metrics:
//   - worker_refresh_runs_total: Total refresh runs by status (success/failure)
//   - worker_refresh_duration_seconds: Duration histogram of refresh runs
//   - worker_refresh_items_total: Total items aggregated across all runs
//   - worker_refresh_last_success_timestamp: Unix timestamp of last successful run
type WorkerMetrics struct {
	*config.ConfigMetrics

	// RefreshRunsTotal counts refresh runs, labelled by outcome.
	RefreshRunsTotal *prometheus.CounterVec

	// RefreshDurationSeconds measures the duration of a refresh run.
	// Buckets cover 1s through 30m, matching typical crawl durations.
	RefreshDurationSeconds prometheus.Histogram

	// RefreshItemsTotal counts items aggregated across all refresh runs.
	RefreshItemsTotal prometheus.Counter

	// RefreshLastSuccessTimestamp records when a run last completed successfully.
	RefreshLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates a WorkerMetrics instance with all metrics
// registered via promauto.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		RefreshRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_refresh_runs_total",
			Help: "Total number of feed refresh runs by status (success/failure)",
		}, []string{"status"}),

		RefreshDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_refresh_duration_seconds",
			Help:    "Duration of feed refresh runs in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		RefreshItemsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_refresh_items_total",
			Help: "Total number of items aggregated across all refresh runs",
		}),

		RefreshLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_refresh_last_success_timestamp",
			Help: "Unix timestamp of the last successful feed refresh run",
		}),
	}
}

// RecordRun increments the refresh run counter for the given status.
// Status should be either "success" or "failure".
func (m *WorkerMetrics) RecordRun(status string) {
	m.RefreshRunsTotal.WithLabelValues(status).Inc()
}

// RecordDuration observes the duration of a refresh run in seconds.
func (m *WorkerMetrics) RecordDuration(seconds float64) {
	m.RefreshDurationSeconds.Observe(seconds)
}

// RecordItemsAggregated adds the number of items aggregated in a run.
func (m *WorkerMetrics) RecordItemsAggregated(count int) {
	m.RefreshItemsTotal.Add(float64(count))
}

// RecordLastSuccess records the current time as the last successful run.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.RefreshLastSuccessTimestamp.SetToCurrentTime()
}
