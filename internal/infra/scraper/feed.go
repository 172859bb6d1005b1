package scraper

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"mcp-rss-crawler/internal/infra/feedparse"
	"mcp-rss-crawler/internal/resilience/circuitbreaker"
)

// FeedFetcher retrieves feed documents over HTTP and normalizes them.
// Requests are rate limited across the fetcher and guarded by a circuit
// breaker so a misbehaving origin cannot stall a whole crawl.
//
// Thread safety: FeedFetcher is safe for concurrent use.
type FeedFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	limiter        *rate.Limiter
	config         Config
}

// NewFeedFetcher creates a new FeedFetcher with the given configuration.
func NewFeedFetcher(config Config) *FeedFetcher {
	return &FeedFetcher{
		client:         newHTTPClient(config),
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		limiter:        rate.NewLimiter(rate.Limit(config.RatePerSecond), 1),
		config:         config,
	}
}

// Fetch retrieves and normalizes the feed document at feedURL.
// A well-formed document of unknown shape is not an error; it yields the
// "Unknown Feed" sentinel with no items.
func (f *FeedFetcher) Fetch(ctx context.Context, feedURL string) (*feedparse.Feed, error) {
	if err := validateURL(feedURL, f.config.DenyPrivateIPs); err != nil {
		return nil, err
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, feedURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("feed fetch circuit breaker open, request rejected",
				slog.String("service", "feed-fetch"),
				slog.String("url", feedURL),
				slog.String("state", f.circuitBreaker.State().String()))
		}
		return nil, err
	}

	return result.(*feedparse.Feed), nil
}

// doFetch performs the actual fetch and parse without the circuit breaker.
func (f *FeedFetcher) doFetch(ctx context.Context, feedURL string) (*feedparse.Feed, error) {
	body, _, err := fetchDocument(ctx, f.client, f.config, feedURL)
	if err != nil {
		return nil, err
	}
	return feedparse.ParseFeed(bytes.NewReader(body), feedURL)
}
