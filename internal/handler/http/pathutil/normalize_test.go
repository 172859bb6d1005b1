package pathutil

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		// Category routes (should be normalized)
		{
			name:     "category Tech",
			path:     "/api/feeds/category/Tech",
			expected: "/api/feeds/category/:category",
		},
		{
			name:     "category Business",
			path:     "/api/feeds/category/Business",
			expected: "/api/feeds/category/:category",
		},
		{
			name:     "category with trailing slash",
			path:     "/api/feeds/category/Tech/",
			expected: "/api/feeds/category/:category",
		},
		{
			name:     "category with query params",
			path:     "/api/feeds/category/Tech?limit=5",
			expected: "/api/feeds/category/:category",
		},
		{
			name:     "category with encoded name",
			path:     "/api/feeds/category/Machine%20Learning",
			expected: "/api/feeds/category/:category",
		},

		// Static routes (should remain unchanged)
		{
			name:     "feeds root",
			path:     "/api/feeds",
			expected: "/api/feeds",
		},
		{
			name:     "feeds search",
			path:     "/api/feeds/search",
			expected: "/api/feeds/search",
		},
		{
			name:     "feeds search with query",
			path:     "/api/feeds/search?q=golang",
			expected: "/api/feeds/search",
		},
		{
			name:     "feeds list",
			path:     "/api/feeds/list",
			expected: "/api/feeds/list",
		},
		{
			name:     "status endpoint",
			path:     "/status",
			expected: "/status",
		},
		{
			name:     "metrics endpoint",
			path:     "/metrics",
			expected: "/metrics",
		},
		{
			name:     "mcp endpoint",
			path:     "/mcp",
			expected: "/mcp",
		},
		{
			name:     "root path",
			path:     "/",
			expected: "/",
		},
		{
			name:     "unknown path passes through",
			path:     "/unknown/path/123",
			expected: "/unknown/path/123",
		},

		// Edge cases
		{
			name:     "category with nested path does not match",
			path:     "/api/feeds/category/Tech/extra",
			expected: "/api/feeds/category/Tech/extra",
		},
		{
			name:     "empty category does not match",
			path:     "/api/feeds/category/",
			expected: "/api/feeds/category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.path)
			if got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
