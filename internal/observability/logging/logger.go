// Package logging configures the structured logger shared by the API
// server and the crawl worker.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"mcp-rss-crawler/internal/handler/http/requestid"
)

// NewLogger builds the process logger. LOG_LEVEL selects the minimum
// level (debug, info, warn, error) and LOG_FORMAT=text switches from JSON
// to human-readable output for local runs.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	opts := &slog.HandlerOptions{
		Level: level,
		// ソース位置はデバッグ実行時のみ付与する
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

// parseLevel maps a LOG_LEVEL value onto a slog level. Unknown values fall
// back to info so a typo never silences the log.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a logger carrying the request ID from the context,
// so all entries of one request can be correlated.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if reqID := requestid.FromContext(ctx); reqID != "" {
		return logger.With("request_id", reqID)
	}
	return logger
}
