package worker

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promauto registers with the default registry, so a single metrics
// instance is shared across tests.
var (
	testMetricsOnce sync.Once
	testMetrics     *WorkerMetrics
)

func sharedMetrics() *WorkerMetrics {
	testMetricsOnce.Do(func() {
		testMetrics = NewWorkerMetrics()
	})
	return testMetrics
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ─────────────────────────────── DefaultConfig ───────────────────────────────

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "*/30 * * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.CrawlTimeout)
	assert.Equal(t, 50, cfg.RefreshLimit)
	assert.Equal(t, 9091, cfg.HealthPort)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
}

// ─────────────────────────────── Validate ───────────────────────────────

func TestValidate_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WorkerConfig)
	}{
		{
			name:   "invalid cron schedule",
			mutate: func(c *WorkerConfig) { c.CronSchedule = "not a cron" },
		},
		{
			name:   "empty cron schedule",
			mutate: func(c *WorkerConfig) { c.CronSchedule = "" },
		},
		{
			name:   "invalid timezone",
			mutate: func(c *WorkerConfig) { c.Timezone = "Mars/Olympus_Mons" },
		},
		{
			name:   "zero crawl timeout",
			mutate: func(c *WorkerConfig) { c.CrawlTimeout = 0 },
		},
		{
			name:   "refresh limit above maximum",
			mutate: func(c *WorkerConfig) { c.RefreshLimit = 100 },
		},
		{
			name:   "refresh limit below minimum",
			mutate: func(c *WorkerConfig) { c.RefreshLimit = 0 },
		},
		{
			name:   "privileged health port",
			mutate: func(c *WorkerConfig) { c.HealthPort = 80 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

// ─────────────────────────────── LoadConfigFromEnv ───────────────────────────────

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv(discardLogger(), sharedMetrics())
	require.NoError(t, err)

	assert.Equal(t, "*/30 * * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.CrawlTimeout)
}

func TestLoadConfigFromEnv_ValidOverrides(t *testing.T) {
	t.Setenv("WORKER_CRON", "0 */6 * * *")
	t.Setenv("WORKER_TIMEZONE", "Asia/Tokyo")
	t.Setenv("CRAWL_TIMEOUT", "20m")
	t.Setenv("REFRESH_LIMIT", "25")
	t.Setenv("WORKER_HEALTH_PORT", "9191")

	cfg, err := LoadConfigFromEnv(discardLogger(), sharedMetrics())
	require.NoError(t, err)

	assert.Equal(t, "0 */6 * * *", cfg.CronSchedule)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, 20*time.Minute, cfg.CrawlTimeout)
	assert.Equal(t, 25, cfg.RefreshLimit)
	assert.Equal(t, 9191, cfg.HealthPort)
}

func TestLoadConfigFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_CRON", "every thirty minutes")
	t.Setenv("CRAWL_TIMEOUT", "yesterday")
	t.Setenv("REFRESH_LIMIT", "9000")

	cfg, err := LoadConfigFromEnv(discardLogger(), sharedMetrics())
	require.NoError(t, err)

	// fail-open: defaults applied instead of errors
	assert.Equal(t, "*/30 * * * *", cfg.CronSchedule)
	assert.Equal(t, 10*time.Minute, cfg.CrawlTimeout)
	assert.Equal(t, 50, cfg.RefreshLimit)
	assert.NoError(t, cfg.Validate())
}
