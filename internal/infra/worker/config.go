// Package worker provides the runtime pieces of the background feed
// refresh process: configuration loading, Prometheus metrics, and the
// health check server exposed alongside the cron scheduler.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"mcp-rss-crawler/internal/pkg/config"
)

// WorkerConfig holds the configuration for the feed refresh worker.
// All fields have defaults so the worker can start without any
// environment configuration; invalid values fall back with a warning.
type WorkerConfig struct {
	// CronSchedule is the cron expression driving refresh runs.
	// Format: "minute hour day month weekday"
	// Default: "*/30 * * * *" (every 30 minutes)
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Default: "UTC"
	Timezone string

	// CrawlTimeout is the maximum duration of a single refresh run.
	// The run is cancelled once this timeout elapses.
	// Default: 10 minutes
	CrawlTimeout time.Duration

	// RefreshLimit is the number of newest items kept per refresh summary.
	// Range: 1-50
	// Default: 50
	RefreshLimit int

	// HealthPort is the port for the worker health check HTTP server.
	// Range: 1024-65535
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns a WorkerConfig with production defaults.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "*/30 * * * *",
		Timezone:     "UTC",
		CrawlTimeout: 10 * time.Minute,
		RefreshLimit: 50,
		HealthPort:   9091,
	}
}

// Validate checks the configuration values and returns an aggregated
// error when any field is out of range.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.CrawlTimeout); err != nil {
		errs = append(errs, fmt.Errorf("crawl timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.RefreshLimit, 1, 50); err != nil {
		errs = append(errs, fmt.Errorf("refresh limit: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads the worker configuration from environment
// variables with validation and fallback to defaults on failure.
//
// This is fail-open: an invalid value never aborts startup. The default
// is used instead, a warning is logged, and the fallback metrics are
// incremented so operators can alert on misconfiguration.
//
// Environment variables:
//   - WORKER_CRON: Cron expression (default: "*/30 * * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - CRAWL_TIMEOUT: Duration string, e.g. "10m" (default: 10 minutes)
//   - REFRESH_LIMIT: Integer 1-50 (default: 50)
//   - WORKER_HEALTH_PORT: Integer 1024-65535 (default: 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	applyFallback := func(field string, warnings []string) {
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
		for _, warning := range warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	result := config.LoadEnvWithFallback("WORKER_CRON", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	if result.FallbackApplied {
		applyFallback("cron_schedule", result.Warnings)
	}

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	if result.FallbackApplied {
		applyFallback("timezone", result.Warnings)
	}

	result = config.LoadEnvDuration("CRAWL_TIMEOUT", cfg.CrawlTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Minute, 4*time.Hour)
	})
	cfg.CrawlTimeout = result.Value.(time.Duration)
	if result.FallbackApplied {
		applyFallback("crawl_timeout", result.Warnings)
	}

	result = config.LoadEnvInt("REFRESH_LIMIT", cfg.RefreshLimit, func(v int) error {
		return config.ValidateIntRange(v, 1, 50)
	})
	cfg.RefreshLimit = result.Value.(int)
	if result.FallbackApplied {
		applyFallback("refresh_limit", result.Warnings)
	}

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	if result.FallbackApplied {
		applyFallback("health_port", result.Warnings)
	}

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	// Always return a valid config (fail-open strategy)
	return &cfg, nil
}
