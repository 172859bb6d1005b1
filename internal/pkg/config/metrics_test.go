package config

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var (
	testMetricsOnce sync.Once
	testMetrics     *ConfigMetrics
)

// promauto registers with the default registry, so a single metrics
// instance is shared across tests.
func sharedConfigMetrics() *ConfigMetrics {
	testMetricsOnce.Do(func() {
		testMetrics = NewConfigMetrics("configtest")
	})
	return testMetrics
}

func TestNewConfigMetrics_CreatesAllCollectors(t *testing.T) {
	m := sharedConfigMetrics()

	assert.NotNil(t, m.LoadTimestamp)
	assert.NotNil(t, m.ValidationErrorsTotal)
	assert.NotNil(t, m.FallbacksTotal)
	assert.NotNil(t, m.FallbackActive)
}

func TestRecordValidationError_IncrementsPerField(t *testing.T) {
	m := sharedConfigMetrics()

	before := testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("cron_schedule"))
	m.RecordValidationError("cron_schedule")
	m.RecordValidationError("cron_schedule")

	after := testutil.ToFloat64(m.ValidationErrorsTotal.WithLabelValues("cron_schedule"))
	assert.Equal(t, before+2, after)
}

func TestRecordFallback_IncrementsPerField(t *testing.T) {
	m := sharedConfigMetrics()

	before := testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("timezone"))
	m.RecordFallback("timezone", "default")

	after := testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("timezone"))
	assert.Equal(t, before+1, after)
}

func TestSetFallbackActive_TogglesGauge(t *testing.T) {
	m := sharedConfigMetrics()

	m.SetFallbackActive("timezone", true)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbackActive))

	m.SetFallbackActive("timezone", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.FallbackActive))
}

func TestRecordLoadTimestamp_SetsGauge(t *testing.T) {
	m := sharedConfigMetrics()

	m.RecordLoadTimestamp()

	assert.Greater(t, testutil.ToFloat64(m.LoadTimestamp), float64(0))
}
