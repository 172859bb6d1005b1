package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/resilience/circuitbreaker"
)

// ArticleScraper fetches an article page and extracts its readable content
// using the Mozilla Readability algorithm, supplemented with Open Graph
// metadata (lead image, author, publication date) from the raw document.
//
// Thread safety: ArticleScraper is safe for concurrent use.
type ArticleScraper struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	limiter        *rate.Limiter
	config         Config
	now            func() time.Time
}

// NewArticleScraper creates a new ArticleScraper with the given configuration.
func NewArticleScraper(config Config) *ArticleScraper {
	return &ArticleScraper{
		client:         newHTTPClient(config),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ArticleScrapeConfig()),
		limiter:        rate.NewLimiter(rate.Limit(config.RatePerSecond), 1),
		config:         config,
		now:            time.Now,
	}
}

// Scrape fetches the page at urlStr and returns the extracted article.
// The returned article carries the identifier derived from the requested
// URL, so repeated scrapes of the same URL overwrite one cache row.
func (s *ArticleScraper) Scrape(ctx context.Context, urlStr string) (*entity.Article, error) {
	if err := validateURL(urlStr, s.config.DenyPrivateIPs); err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := s.circuitBreaker.Execute(func() (interface{}, error) {
		return s.doScrape(ctx, urlStr)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("article scrape circuit breaker open, request rejected",
				slog.String("service", "article-scrape"),
				slog.String("url", urlStr),
				slog.String("state", s.circuitBreaker.State().String()))
		}
		return nil, err
	}

	return result.(*entity.Article), nil
}

// doScrape performs the fetch and the two-stage extraction: Readability for
// the body, goquery over the raw document for metadata Readability drops.
func (s *ArticleScraper) doScrape(ctx context.Context, urlStr string) (*entity.Article, error) {
	htmlBytes, finalURL, err := fetchDocument(ctx, s.client, s.config, urlStr)
	if err != nil {
		return nil, err
	}

	parsed, err := readability.FromReader(bytes.NewReader(htmlBytes), finalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if parsed.TextContent == "" && parsed.Content == "" {
		return nil, fmt.Errorf("%w: no readable content found", ErrExtractionFailed)
	}

	meta := extractMeta(htmlBytes)

	author := parsed.Byline
	if author == "" {
		author = meta.author
	}
	summary := parsed.Excerpt
	if summary == "" {
		summary = meta.description
	}

	return &entity.Article{
		ID:            entity.NewArticleID(urlStr),
		URL:           urlStr,
		Title:         parsed.Title,
		Content:       parsed.TextContent,
		HTML:          parsed.Content,
		Author:        author,
		PublishedDate: meta.publishedTime,
		ImageURL:      meta.image,
		Summary:       summary,
		FetchedAt:     s.now().Unix(),
	}, nil
}

// pageMeta holds the metadata scraped from meta tags of the raw document.
type pageMeta struct {
	image         string
	author        string
	publishedTime string
	description   string
}

// extractMeta reads Open Graph and common article meta tags. A document
// that goquery cannot parse yields empty metadata, not an error; the
// Readability result alone is still a usable article.
func extractMeta(htmlBytes []byte) pageMeta {
	var meta pageMeta

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return meta
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok || content == "" {
			return
		}
		property, _ := sel.Attr("property")
		name, _ := sel.Attr("name")

		switch {
		case property == "og:image" && meta.image == "":
			meta.image = content
		case (property == "article:published_time" || name == "article:published_time") && meta.publishedTime == "":
			meta.publishedTime = content
		case (property == "article:author" || name == "author") && meta.author == "":
			meta.author = content
		case (property == "og:description" || name == "description") && meta.description == "":
			meta.description = content
		}
	})

	return meta
}
