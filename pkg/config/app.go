// Package config provides configuration loading helpers for the application.
// Values are read from environment variables with validated fallbacks, and
// the default feed list is embedded at build time.
package config

import (
	"time"
)

// AppConfig holds the configuration for the API server process.
type AppConfig struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// ServiceName identifies this service in status responses and logs.
	ServiceName string

	// Version is the application version reported by health endpoints.
	Version string

	// FetchConcurrency bounds the number of feeds crawled in parallel
	// during a refresh cycle.
	FetchConcurrency int

	// ShutdownTimeout is the grace period for in-flight requests on shutdown.
	ShutdownTimeout time.Duration

	// RequestTimeout bounds the handling time of a single HTTP request.
	// Refresh-triggering requests fetch feeds inline, so this must cover
	// a full crawl of slow upstreams.
	RequestTimeout time.Duration
}

// LoadAppConfig reads the API server configuration from environment variables.
//
// Environment variables:
//   - PORT: HTTP listen port (default: 5556)
//   - VERSION: Application version string (default: "dev")
//   - FETCH_CONCURRENCY: Parallel feed fetch limit (default: 8)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown grace period (default: 5s)
//   - REQUEST_TIMEOUT: Per-request handling limit (default: 2m)
func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:             GetEnvInt("PORT", 5556),
		ServiceName:      "mcp-rss-crawler",
		Version:          GetEnvString("VERSION", "dev"),
		FetchConcurrency: GetEnvInt("FETCH_CONCURRENCY", 8),
		ShutdownTimeout:  GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:   GetEnvDuration("REQUEST_TIMEOUT", 2*time.Minute),
	}
}
