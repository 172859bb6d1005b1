// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Feed, Item and Article, along with
// their validation rules and domain-specific errors.
package entity

// Item represents a single normalized feed entry.
// All feed dialects (RSS 2.0, Atom, RDF variants) are reduced to this shape.
type Item struct {
	ID         string
	FeedID     string
	Title      string
	Link       string
	Summary    string
	Content    string
	Published  int64 // Unix seconds
	Updated    int64 // Unix seconds, equals Published unless the feed carried an explicit update time
	Author     string
	Categories []string
}

// NewItemID derives an item identifier when the feed entry carries no guid/id.
// The combination of feed URL and entry title is deterministic, so repeated
// fetches of the same document upsert instead of duplicating.
func NewItemID(feedURL, title string) string {
	return feedURL + "/" + title
}
