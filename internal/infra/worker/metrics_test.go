package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The shared metrics instance from config_test.go is reused here because
// promauto panics on duplicate registration.

func TestWorkerMetrics_RecordRun(t *testing.T) {
	m := sharedMetrics()

	assert.NotPanics(t, func() {
		m.RecordRun("success")
		m.RecordRun("failure")
	})
}

func TestWorkerMetrics_RecordDuration(t *testing.T) {
	m := sharedMetrics()

	assert.NotPanics(t, func() {
		m.RecordDuration(0.5)
		m.RecordDuration(120)
	})
}

func TestWorkerMetrics_RecordItemsAggregated(t *testing.T) {
	m := sharedMetrics()

	assert.NotPanics(t, func() {
		m.RecordItemsAggregated(0)
		m.RecordItemsAggregated(42)
	})
}

func TestWorkerMetrics_RecordLastSuccess(t *testing.T) {
	m := sharedMetrics()

	assert.NotPanics(t, func() {
		m.RecordLastSuccess()
	})
}

func TestWorkerMetrics_ConfigMetricsEmbedded(t *testing.T) {
	m := sharedMetrics()

	assert.NotNil(t, m.ConfigMetrics)
	assert.NotPanics(t, func() {
		m.RecordValidationError("cron_schedule")
		m.RecordFallback("cron_schedule", "default")
		m.SetFallbackActive("", true)
		m.SetFallbackActive("", false)
		m.RecordLoadTimestamp()
	})
}
