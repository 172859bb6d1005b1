package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/observability/metrics"
	"mcp-rss-crawler/internal/repository"
)

// Scraper extracts readable article content from a web page.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*entity.Article, error)
}

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// Service provides article scraping and cache query use cases.
type Service struct {
	Repo    repository.ArticleRepository
	Scraper Scraper

	now func() time.Time
}

// NewService creates an article service with production defaults.
func NewService(repo repository.ArticleRepository, scraper Scraper) *Service {
	return &Service{
		Repo:    repo,
		Scraper: scraper,
		now:     time.Now,
	}
}

// FetchFromURL returns the full article content for a URL. Previously
// scraped URLs are served from the cache; everything else is fetched,
// extracted and stored before returning.
func (s *Service) FetchFromURL(ctx context.Context, url string) (*entity.Article, error) {
	if err := entity.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("FetchFromURL: %w: %s", ErrInvalidArticleURL, err)
	}

	cached, err := s.Repo.GetByURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("FetchFromURL: %w", err)
	}
	if cached != nil {
		metrics.RecordArticleScrapeCached()
		return cached, nil
	}

	start := s.now()
	scraped, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		metrics.RecordArticleScrapeFailed(s.now().Sub(start))
		return nil, fmt.Errorf("FetchFromURL: scrape: %w", err)
	}
	metrics.RecordArticleScrapeSuccess(s.now().Sub(start), len(scraped.Content))

	if err := s.Repo.Save(ctx, scraped); err != nil {
		// The caller still gets the article when only caching fails.
		slog.Warn("article cache write failed", "url", url, "error", err)
	}
	return scraped, nil
}

// List returns the most recently scraped articles, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return articles, nil
}

// Search returns cached articles whose title, summary or content contains
// the query.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*entity.Article, error) {
	if query == "" {
		return nil, fmt.Errorf("Search: %w", ErrEmptyQuery)
	}
	articles, err := s.Repo.Search(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	return articles, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
