package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization for optimal performance (<1μs per operation).
var pathPatterns = []*PathPattern{
	// Category routes carry an arbitrary category name
	{Pattern: regexp.MustCompile(`^/api/feeds/category/[^/]+$`), Template: "/api/feeds/category/:category"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts parameterized paths (e.g., /api/feeds/category/Tech) to template format
// (e.g., /api/feeds/category/:category). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/feeds/category/Tech")     // "/api/feeds/category/:category"
//	NormalizePath("/api/feeds/category/Business") // "/api/feeds/category/:category"
//	NormalizePath("/api/feeds/search")            // "/api/feeds/search" (unchanged)
//	NormalizePath("/api/feeds/list")              // "/api/feeds/list" (unchanged)
//	NormalizePath("/status")                      // "/status" (unchanged)
//	NormalizePath("/metrics")                     // "/metrics" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/feeds/category/Tech?limit=5") // "/api/feeds/category/:category"
//	NormalizePath("/api/feeds/category/Tech/")        // "/api/feeds/category/:category"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	// Try to match against known patterns
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	// This is safe - static paths like /status, /metrics and
	// search endpoints like /api/feeds/search pass through unchanged
	return path
}
