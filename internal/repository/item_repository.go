package repository

import (
	"context"

	"mcp-rss-crawler/internal/domain/entity"
)

// ItemWithFeed represents an item along with the title and URL of its owning feed.
type ItemWithFeed struct {
	Item      *entity.Item
	FeedTitle string
	FeedURL   string
}

// ItemQuery contains optional filters for item queries.
// Results are always ordered by published timestamp, newest first.
type ItemQuery struct {
	Limit    int
	Category string // Optional: restrict to items of feeds in this category
	Keyword  string // Optional: substring match over title and summary
}

// ItemRepository persists normalized feed items.
type ItemRepository interface {
	// UpsertBatch writes all items of a single feed fetch.
	// Existing rows with the same item ID are overwritten, never duplicated.
	UpsertBatch(ctx context.Context, feedID string, items []*entity.Item) error
	Query(ctx context.Context, q ItemQuery) ([]ItemWithFeed, error)
}
