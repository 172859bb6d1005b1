// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (feeds, items, article scrapes)
//   - Database query metrics
//   - Application performance metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "mcp-rss-crawler/internal/observability/metrics"
//
//	func crawlFeed(feedID string) {
//	    start := time.Now()
//	    // ... fetch and store items ...
//	    count := 10
//
//	    metrics.RecordFeedCrawl(feedID, time.Since(start), count)
//	}
package metrics
