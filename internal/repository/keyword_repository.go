package repository

import (
	"context"

	"mcp-rss-crawler/internal/domain/entity"
)

// KeywordRepository persists interest keywords.
type KeywordRepository interface {
	List(ctx context.Context) ([]*entity.Keyword, error)
	GetByKeyword(ctx context.Context, keyword string) (*entity.Keyword, error)
	Create(ctx context.Context, kw *entity.Keyword) error
	Delete(ctx context.Context, id string) error
}
