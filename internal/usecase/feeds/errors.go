// Package feeds provides use cases for feed subscriptions and aggregated
// article streams. It implements business logic for crawling subscribed
// feeds, querying stored items and managing the subscription list.
package feeds

import "errors"

// Sentinel errors for feed use case operations.
var (
	// ErrFeedNotFound indicates that the requested feed was not found.
	// Typically returned when removing a feed whose URL is not subscribed.
	ErrFeedNotFound = errors.New("feed not found")

	// ErrInvalidFeedURL indicates that the provided feed URL is invalid.
	// Feed URLs must be valid HTTP/HTTPS URLs with proper format.
	ErrInvalidFeedURL = errors.New("invalid feed URL")
)
