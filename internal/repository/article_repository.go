package repository

import (
	"context"

	"mcp-rss-crawler/internal/domain/entity"
)

type ArticleRepository interface {
	// GetByURL returns the cached article for the URL, or (nil, nil) when absent.
	GetByURL(ctx context.Context, url string) (*entity.Article, error)
	// Save inserts the article or overwrites the existing row with the same URL.
	Save(ctx context.Context, article *entity.Article) error
	List(ctx context.Context, limit int) ([]*entity.Article, error)
	Search(ctx context.Context, keyword string, limit int) ([]*entity.Article, error)
}
