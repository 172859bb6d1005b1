// Package article provides use cases for on-demand article scraping.
// It implements business logic for fetching full article content from
// arbitrary web pages, caching the results and querying the cache.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidArticleURL indicates that the provided article URL is invalid.
	// Article URLs must be valid HTTP/HTTPS URLs with proper format.
	ErrInvalidArticleURL = errors.New("invalid article URL")

	// ErrEmptyQuery indicates that a search was requested without a query.
	// Search operations require a non-empty query string.
	ErrEmptyQuery = errors.New("search query is required")
)
