package entity

import "encoding/base64"

// Feed represents a subscribed feed source in the system.
// It contains the feed URL, display metadata, and the last refresh timestamp.
type Feed struct {
	ID          string
	URL         string
	Name        string
	Category    string
	LastUpdated int64 // Unix seconds
}

// feedIDLength is the number of base64 characters kept from the encoded URL.
const feedIDLength = 20

// NewFeedID derives a stable feed identifier from its URL.
// The same URL always yields the same ID, so re-adding a feed is idempotent.
func NewFeedID(url string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(url))
	if len(encoded) > feedIDLength {
		encoded = encoded[:feedIDLength]
	}
	return "feed/" + encoded
}
