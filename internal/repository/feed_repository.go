package repository

import (
	"context"

	"mcp-rss-crawler/internal/domain/entity"
)

// FeedRepository persists subscribed feed sources.
type FeedRepository interface {
	List(ctx context.Context) ([]*entity.Feed, error)
	Get(ctx context.Context, id string) (*entity.Feed, error)
	GetByURL(ctx context.Context, url string) (*entity.Feed, error)
	// Upsert inserts the feed or overwrites the existing row with the same ID.
	Upsert(ctx context.Context, feed *entity.Feed) error
	Delete(ctx context.Context, id string) error
	TouchLastUpdated(ctx context.Context, id string, ts int64) error
}
