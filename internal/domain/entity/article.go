package entity

import (
	"crypto/md5" //nolint:gosec // identifier derivation, not security
	"encoding/hex"
)

// Article represents a scraped full-text article in the system.
// Unlike Item, which comes from a feed document, an Article is fetched
// on demand from the target page itself.
type Article struct {
	ID            string
	URL           string
	Title         string
	Content       string
	HTML          string
	Author        string
	PublishedDate string
	ImageURL      string
	Summary       string
	FetchedAt     int64 // Unix seconds
}

// NewArticleID derives a stable article identifier from its URL.
func NewArticleID(url string) string {
	sum := md5.Sum([]byte(url)) //nolint:gosec // identifier derivation, not security
	return "article/" + hex.EncodeToString(sum[:])
}
