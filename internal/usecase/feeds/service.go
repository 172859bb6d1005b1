package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/infra/feedparse"
	"mcp-rss-crawler/internal/observability/metrics"
	"mcp-rss-crawler/internal/repository"
)

// FeedFetcher retrieves and parses one feed document.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*feedparse.Feed, error)
}

// Default describes one feed seeded into an empty subscription table.
type Default struct {
	URL      string
	Name     string
	Category string
}

const (
	defaultItemLimit = 10
	maxItemLimit     = 50

	// defaultConcurrency bounds parallel feed fetches when no explicit
	// limit is configured.
	defaultConcurrency = 8
)

// Service orchestrates feed crawling and aggregated item queries.
type Service struct {
	Feeds    repository.FeedRepository
	Items    repository.ItemRepository
	Keywords repository.KeywordRepository
	Fetcher  FeedFetcher

	// Concurrency bounds the number of feeds fetched in parallel.
	Concurrency int

	// Defaults are seeded when the subscription table is empty.
	Defaults []Default

	now func() time.Time
}

// NewService creates a feed service with production defaults.
func NewService(
	feeds repository.FeedRepository,
	items repository.ItemRepository,
	keywords repository.KeywordRepository,
	fetcher FeedFetcher,
	concurrency int,
	defaults []Default,
) *Service {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{
		Feeds:       feeds,
		Items:       items,
		Keywords:    keywords,
		Fetcher:     fetcher,
		Concurrency: concurrency,
		Defaults:    defaults,
		now:         time.Now,
	}
}

// clampLimit normalizes a requested item count into the allowed range.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultItemLimit
	}
	if limit > maxItemLimit {
		return maxItemLimit
	}
	return limit
}

// RefreshAll crawls every subscribed feed, stores the fetched items and
// returns the newest ones across all feeds. Individual feed failures are
// logged and skipped so one broken feed cannot empty the whole response.
func (s *Service) RefreshAll(ctx context.Context, limit int) (*Envelope, error) {
	limit = clampLimit(limit)

	subscribed, err := s.Feeds.List(ctx)
	if err != nil {
		return s.readFailure("refresh", err), nil
	}
	if len(subscribed) == 0 && len(s.Defaults) > 0 {
		if err := s.seedDefaults(ctx); err != nil {
			return nil, fmt.Errorf("RefreshAll: %w", err)
		}
		subscribed, err = s.Feeds.List(ctx)
		if err != nil {
			return s.readFailure("refresh", err), nil
		}
	}
	metrics.UpdateFeedsTotal(len(subscribed))

	var (
		mu   sync.Mutex
		rows []repository.ItemWithFeed
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for _, feed := range subscribed {
		g.Go(func() error {
			fetched := s.crawlFeed(gctx, feed)
			if len(fetched) == 0 {
				return nil
			}
			mu.Lock()
			rows = append(rows, fetched...)
			mu.Unlock()
			return nil
		})
	}
	// Workers contain their own failures, so Wait only propagates
	// context cancellation.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RefreshAll: %w", err)
	}

	sortByPublished(rows)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return newEnvelope(
		"feed/all",
		"RSS Manager Feeds",
		"Aggregated feeds from RSS Manager",
		envelopeItems(rows),
		s.now(),
	), nil
}

// crawlFeed fetches and stores one feed. Failures are recorded and logged
// but never returned; a broken feed must not abort the crawl of the rest.
func (s *Service) crawlFeed(ctx context.Context, feed *entity.Feed) []repository.ItemWithFeed {
	start := s.now()

	parsed, err := s.Fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		slog.Warn("feed fetch failed",
			"feed_id", feed.ID,
			"url", feed.URL,
			"error", err,
		)
		metrics.RecordFeedCrawlError(feed.ID, "fetch_failed")
		return nil
	}

	for _, item := range parsed.Items {
		item.FeedID = feed.ID
	}
	if err := s.Items.UpsertBatch(ctx, feed.ID, parsed.Items); err != nil {
		slog.Warn("feed store failed",
			"feed_id", feed.ID,
			"url", feed.URL,
			"error", err,
		)
		metrics.RecordFeedCrawlError(feed.ID, "store_failed")
		return nil
	}
	if err := s.Feeds.TouchLastUpdated(ctx, feed.ID, s.now().Unix()); err != nil {
		slog.Warn("feed timestamp update failed", "feed_id", feed.ID, "error", err)
	}
	metrics.RecordFeedCrawl(feed.ID, s.now().Sub(start), len(parsed.Items))

	// The stored feed name stays authoritative for display. The parsed
	// title is only used when the subscription has no name yet.
	title := feed.Name
	if title == "" {
		title = parsed.Title
	}

	rows := make([]repository.ItemWithFeed, 0, len(parsed.Items)) // パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	for _, item := range parsed.Items {
		rows = append(rows, repository.ItemWithFeed{
			Item:      item,
			FeedTitle: title,
			FeedURL:   feed.URL,
		})
	}
	return rows
}

// seedDefaults registers the built-in feed list on first run.
func (s *Service) seedDefaults(ctx context.Context) error {
	for _, d := range s.Defaults {
		feed := &entity.Feed{
			ID:       entity.NewFeedID(d.URL),
			URL:      d.URL,
			Name:     d.Name,
			Category: d.Category,
		}
		if err := s.Feeds.Upsert(ctx, feed); err != nil {
			return fmt.Errorf("seed default feed %s: %w", d.URL, err)
		}
	}
	slog.Info("seeded default feeds", "count", len(s.Defaults))
	return nil
}

// readFailure logs a failed store read and builds the empty error envelope
// handed to clients in its place. Read paths never propagate store errors;
// callers always receive a well-formed stream.
func (s *Service) readFailure(scope string, err error) *Envelope {
	slog.Warn("store read failed", "scope", scope, "error", err)
	return NewErrorEnvelope("Failed to retrieve feeds", s.now())
}

// Latest returns the newest stored items across all feeds without crawling.
func (s *Service) Latest(ctx context.Context, limit int) *Envelope {
	rows, err := s.Items.Query(ctx, repository.ItemQuery{Limit: clampLimit(limit)})
	if err != nil {
		return s.readFailure("latest", err)
	}
	return newEnvelope(
		"feed/latest",
		"Latest RSS Feeds",
		"Latest articles from RSS feeds",
		envelopeItems(rows),
		s.now(),
	)
}

// ByCategory returns the newest stored items from feeds in one category.
func (s *Service) ByCategory(ctx context.Context, category string, limit int) *Envelope {
	rows, err := s.Items.Query(ctx, repository.ItemQuery{
		Limit:    clampLimit(limit),
		Category: category,
	})
	if err != nil {
		return s.readFailure("category", err)
	}
	return newEnvelope(
		scopedEnvelopeID("category", category),
		fmt.Sprintf("%s Feeds", category),
		fmt.Sprintf("Feeds from the %s category", category),
		envelopeItems(rows),
		s.now(),
	)
}

// SearchItems returns stored items whose title or summary contains the query.
func (s *Service) SearchItems(ctx context.Context, query string, limit int) *Envelope {
	rows, err := s.Items.Query(ctx, repository.ItemQuery{
		Limit:   clampLimit(limit),
		Keyword: query,
	})
	if err != nil {
		return s.readFailure("search", err)
	}
	return newEnvelope(
		scopedEnvelopeID("search", query),
		fmt.Sprintf("Search Results for %q", query),
		fmt.Sprintf("Search results for %q", query),
		envelopeItems(rows),
		s.now(),
	)
}

// ByKeywords returns stored items matching any of the registered interest
// keywords. Items matching several keywords appear once, attributed to the
// first keyword that matched them.
func (s *Service) ByKeywords(ctx context.Context, limit int) *Envelope {
	limit = clampLimit(limit)

	keywords, err := s.Keywords.List(ctx)
	if err != nil {
		return s.readFailure("interests", err)
	}

	seen := make(map[string]struct{})
	var rows []repository.ItemWithFeed
	for _, kw := range keywords {
		matched, err := s.Items.Query(ctx, repository.ItemQuery{
			Limit:   limit,
			Keyword: kw.Keyword,
		})
		if err != nil {
			return s.readFailure("interests", err)
		}
		for _, row := range matched {
			if _, ok := seen[row.Item.ID]; ok {
				continue
			}
			seen[row.Item.ID] = struct{}{}
			rows = append(rows, row)
		}
		if len(rows) >= limit {
			break
		}
	}

	sortByPublished(rows)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return newEnvelope(
		"feed/interests",
		"Articles Matching Your Interests",
		"Articles matching your interest keywords",
		envelopeItems(rows),
		s.now(),
	)
}

// ListFeeds returns the current subscription list.
func (s *Service) ListFeeds(ctx context.Context) ([]*entity.Feed, error) {
	feeds, err := s.Feeds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListFeeds: %w", err)
	}
	return feeds, nil
}

// AddFeed subscribes a new feed. Adding a URL that is already subscribed
// updates its name and category instead of creating a duplicate.
func (s *Service) AddFeed(ctx context.Context, url, name, category string) (*entity.Feed, error) {
	if err := entity.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("AddFeed: %w: %s", ErrInvalidFeedURL, err)
	}

	feed, err := s.Feeds.GetByURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("AddFeed: %w", err)
	}
	if feed == nil {
		feed = &entity.Feed{
			ID:  entity.NewFeedID(url),
			URL: url,
		}
	}
	feed.Name = name
	feed.Category = category

	if err := s.Feeds.Upsert(ctx, feed); err != nil {
		return nil, fmt.Errorf("AddFeed: %w", err)
	}
	return feed, nil
}

// RemoveFeed unsubscribes the feed with the given URL. Stored items of the
// feed are removed along with it.
func (s *Service) RemoveFeed(ctx context.Context, url string) error {
	feed, err := s.Feeds.GetByURL(ctx, url)
	if err != nil {
		return fmt.Errorf("RemoveFeed: %w", err)
	}
	if feed == nil {
		return fmt.Errorf("RemoveFeed: %w", ErrFeedNotFound)
	}
	if err := s.Feeds.Delete(ctx, feed.ID); err != nil {
		return fmt.Errorf("RemoveFeed: %w", err)
	}
	return nil
}

// sortByPublished orders rows newest first.
func sortByPublished(rows []repository.ItemWithFeed) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Item.Published > rows[j].Item.Published
	})
}
