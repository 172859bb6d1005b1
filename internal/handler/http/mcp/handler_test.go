package mcp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/handler/http/mcp"
	"mcp-rss-crawler/internal/repository"
	articleUC "mcp-rss-crawler/internal/usecase/article"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
	keywordUC "mcp-rss-crawler/internal/usecase/keyword"
)

/* ───────── テスト用スタブ ───────── */

type stubFeedRepo struct {
	feeds []*entity.Feed
}

func (s *stubFeedRepo) List(_ context.Context) ([]*entity.Feed, error) { return s.feeds, nil }
func (s *stubFeedRepo) Get(_ context.Context, _ string) (*entity.Feed, error) {
	return nil, nil
}
func (s *stubFeedRepo) GetByURL(_ context.Context, url string) (*entity.Feed, error) {
	for _, f := range s.feeds {
		if f.URL == url {
			return f, nil
		}
	}
	return nil, nil
}
func (s *stubFeedRepo) Upsert(_ context.Context, f *entity.Feed) error { return nil }
func (s *stubFeedRepo) Delete(_ context.Context, _ string) error       { return nil }
func (s *stubFeedRepo) TouchLastUpdated(_ context.Context, _ string, _ int64) error {
	return nil
}

type stubItemRepo struct {
	rows     []repository.ItemWithFeed
	queryErr error
}

func (s *stubItemRepo) UpsertBatch(_ context.Context, _ string, _ []*entity.Item) error {
	return nil
}
func (s *stubItemRepo) Query(_ context.Context, _ repository.ItemQuery) ([]repository.ItemWithFeed, error) {
	return s.rows, s.queryErr
}

type stubKeywordRepo struct {
	keywords []*entity.Keyword
	deleted  []string
}

func (s *stubKeywordRepo) List(_ context.Context) ([]*entity.Keyword, error) {
	return s.keywords, nil
}
func (s *stubKeywordRepo) GetByKeyword(_ context.Context, keyword string) (*entity.Keyword, error) {
	for _, kw := range s.keywords {
		if kw.Keyword == keyword {
			return kw, nil
		}
	}
	return nil, nil
}
func (s *stubKeywordRepo) Create(_ context.Context, _ *entity.Keyword) error { return nil }
func (s *stubKeywordRepo) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubArticleRepo struct {
	articles []*entity.Article
}

func (s *stubArticleRepo) GetByURL(_ context.Context, _ string) (*entity.Article, error) {
	return nil, nil
}
func (s *stubArticleRepo) Save(_ context.Context, _ *entity.Article) error { return nil }
func (s *stubArticleRepo) List(_ context.Context, _ int) ([]*entity.Article, error) {
	return s.articles, nil
}
func (s *stubArticleRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Article, error) {
	return s.articles, nil
}

type stubScraper struct {
	article *entity.Article
	err     error
}

func (s *stubScraper) Scrape(_ context.Context, _ string) (*entity.Article, error) {
	return s.article, s.err
}

type handlerConfig struct {
	feedRepo    *stubFeedRepo
	itemRepo    *stubItemRepo
	keywordRepo *stubKeywordRepo
	articleRepo *stubArticleRepo
	scraper     *stubScraper
}

func newHandler(cfg handlerConfig) *mcp.Handler {
	if cfg.feedRepo == nil {
		cfg.feedRepo = &stubFeedRepo{}
	}
	if cfg.itemRepo == nil {
		cfg.itemRepo = &stubItemRepo{}
	}
	if cfg.keywordRepo == nil {
		cfg.keywordRepo = &stubKeywordRepo{}
	}
	if cfg.articleRepo == nil {
		cfg.articleRepo = &stubArticleRepo{}
	}
	if cfg.scraper == nil {
		cfg.scraper = &stubScraper{}
	}
	return &mcp.Handler{
		Feeds:    feedsUC.NewService(cfg.feedRepo, cfg.itemRepo, cfg.keywordRepo, nil, 1, nil),
		Articles: articleUC.NewService(cfg.articleRepo, cfg.scraper),
		Keywords: keywordUC.NewService(cfg.keywordRepo),
	}
}

func callMCP(t *testing.T, h *mcp.Handler, body string) (*httptest.ResponseRecorder, mcp.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp mcp.Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rr, resp
}

func resultText(t *testing.T, resp mcp.Response) string {
	t.Helper()
	if resp.Result == nil {
		t.Fatalf("result is nil, error = %+v", resp.Error)
	}
	if len(resp.Result.Content) != 1 {
		t.Fatalf("content length = %d, want 1", len(resp.Result.Content))
	}
	if resp.Result.Content[0].Type != "text" {
		t.Fatalf("content type = %q, want %q", resp.Result.Content[0].Type, "text")
	}
	return resp.Result.Content[0].Text
}

/* ───────── ディスパッチ テスト ───────── */

func TestHandler_UnknownMethod(t *testing.T) {
	rr, resp := callMCP(t, newHandler(handlerConfig{}), `{"method":"noSuchTool"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if resp.Error == nil {
		t.Fatal("error is nil")
	}
	if resp.Error.Code != mcp.CodeMethodNotFound {
		t.Errorf("code = %d, want %d", resp.Error.Code, mcp.CodeMethodNotFound)
	}
	if resp.Error.Message != "Method not found" {
		t.Errorf("message = %q, want %q", resp.Error.Message, "Method not found")
	}
}

func TestHandler_MalformedBody(t *testing.T) {
	rr, resp := callMCP(t, newHandler(handlerConfig{}), `{"method":`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if resp.Error == nil || resp.Error.Code != mcp.CodeInternalError {
		t.Fatalf("error = %+v, want code %d", resp.Error, mcp.CodeInternalError)
	}
	if resp.Error.Message != "Internal error" {
		t.Errorf("message = %q, want %q", resp.Error.Message, "Internal error")
	}
}

/* ───────── フィード系ツール テスト ───────── */

func TestHandler_GetLatestRssFeeds(t *testing.T) {
	itemRepo := &stubItemRepo{rows: []repository.ItemWithFeed{
		{
			Item:      &entity.Item{ID: "a", Title: "Post", Published: 100, Updated: 100},
			FeedTitle: "One",
			FeedURL:   "https://one.example.com/rss",
		},
	}}
	h := newHandler(handlerConfig{itemRepo: itemRepo})

	_, resp := callMCP(t, h, `{"method":"getLatestRssFeeds","params":{"limit":5}}`)
	text := resultText(t, resp)

	// 整形済みJSONとしてエンベロープが返る
	if !strings.Contains(text, `"id": "feed/latest"`) {
		t.Errorf("text missing envelope id: %s", text)
	}
	if !strings.Contains(text, `"title": "Post"`) {
		t.Errorf("text missing item title: %s", text)
	}
}

// ストア読み出し失敗時はisErrorではなく空のエラーエンベロープを返す
func TestHandler_GetLatestRssFeeds_StoreFailure(t *testing.T) {
	itemRepo := &stubItemRepo{queryErr: context.DeadlineExceeded}
	h := newHandler(handlerConfig{itemRepo: itemRepo})

	_, resp := callMCP(t, h, `{"method":"getLatestRssFeeds","params":{"limit":5}}`)

	if resp.Result == nil || resp.Result.IsError {
		t.Fatalf("result = %+v, want non-error result", resp.Result)
	}
	text := resultText(t, resp)
	if !strings.Contains(text, `"id": "error"`) {
		t.Errorf("text missing error envelope id: %s", text)
	}
	if !strings.Contains(text, `"items": []`) {
		t.Errorf("text missing empty items: %s", text)
	}
}

func TestHandler_ListRssFeeds(t *testing.T) {
	feedRepo := &stubFeedRepo{feeds: []*entity.Feed{
		{ID: "feed/one", URL: "https://one.example.com/rss", Name: "One", Category: "Tech"},
	}}
	h := newHandler(handlerConfig{feedRepo: feedRepo})

	_, resp := callMCP(t, h, `{"method":"listRssFeeds"}`)
	text := resultText(t, resp)

	if !strings.Contains(text, `"name": "One"`) {
		t.Errorf("text missing feed name: %s", text)
	}
}

func TestHandler_RemoveRssFeed_NotFound(t *testing.T) {
	h := newHandler(handlerConfig{})

	_, resp := callMCP(t, h, `{"method":"removeRssFeed","params":{"url":"https://missing.example.com/rss"}}`)

	if !resp.Result.IsError {
		t.Fatal("isError = false, want true")
	}
	text := resultText(t, resp)
	if !strings.Contains(text, "The feed may not exist.") {
		t.Errorf("text = %q", text)
	}
}

/* ───────── キーワード系ツール テスト ───────── */

func TestHandler_AddKeyword(t *testing.T) {
	h := newHandler(handlerConfig{})

	_, resp := callMCP(t, h, `{"method":"addKeyword","params":{"keyword":"golang"}}`)
	text := resultText(t, resp)

	if resp.Result.IsError {
		t.Fatal("isError = true, want false")
	}
	if text != `Successfully added interest keyword: "golang"` {
		t.Errorf("text = %q", text)
	}
}

func TestHandler_AddKeyword_Duplicate(t *testing.T) {
	keywordRepo := &stubKeywordRepo{keywords: []*entity.Keyword{
		{ID: "1", Keyword: "golang"},
	}}
	h := newHandler(handlerConfig{keywordRepo: keywordRepo})

	_, resp := callMCP(t, h, `{"method":"addKeyword","params":{"keyword":"golang"}}`)

	if !resp.Result.IsError {
		t.Fatal("isError = false, want true")
	}
	text := resultText(t, resp)
	if !strings.Contains(text, "The keyword may already exist.") {
		t.Errorf("text = %q", text)
	}
}

func TestHandler_ListKeywords(t *testing.T) {
	keywordRepo := &stubKeywordRepo{keywords: []*entity.Keyword{
		{ID: "1", Keyword: "golang"},
		{ID: "2", Keyword: "rust"},
	}}
	h := newHandler(handlerConfig{keywordRepo: keywordRepo})

	_, resp := callMCP(t, h, `{"method":"listKeywords"}`)
	text := resultText(t, resp)

	var keywords []string
	if err := json.Unmarshal([]byte(text), &keywords); err != nil {
		t.Fatalf("failed to decode keywords: %v", err)
	}
	if len(keywords) != 2 || keywords[0] != "golang" {
		t.Errorf("keywords = %v", keywords)
	}
}

/* ───────── 記事系ツール テスト ───────── */

func TestHandler_FetchArticle(t *testing.T) {
	scraper := &stubScraper{article: &entity.Article{
		URL:     "https://example.com/post",
		Title:   "Big News",
		Content: "body text",
	}}
	h := newHandler(handlerConfig{scraper: scraper})

	_, resp := callMCP(t, h, `{"method":"fetchArticle","params":{"url":"https://example.com/post"}}`)
	text := resultText(t, resp)

	if text != "# Big News\n\nbody text" {
		t.Errorf("text = %q", text)
	}
}

func TestHandler_FetchArticle_Failure(t *testing.T) {
	h := newHandler(handlerConfig{scraper: &stubScraper{err: context.DeadlineExceeded}})

	_, resp := callMCP(t, h, `{"method":"fetchArticle","params":{"url":"https://example.com/post"}}`)

	if !resp.Result.IsError {
		t.Fatal("isError = false, want true")
	}
	if text := resultText(t, resp); text != "Failed to fetch article from the URL." {
		t.Errorf("text = %q", text)
	}
}

func TestHandler_GetArticles_Empty(t *testing.T) {
	h := newHandler(handlerConfig{})

	_, resp := callMCP(t, h, `{"method":"getArticles"}`)

	if resp.Result.IsError {
		t.Fatal("isError = true, want false")
	}
	if text := resultText(t, resp); text != "No articles found in the database." {
		t.Errorf("text = %q", text)
	}
}

func TestHandler_SearchArticles(t *testing.T) {
	articleRepo := &stubArticleRepo{articles: []*entity.Article{
		{
			URL:           "https://example.com/post",
			Title:         "Go generics",
			Author:        "alice",
			PublishedDate: "2025-06-01",
			Summary:       "a summary",
		},
	}}
	h := newHandler(handlerConfig{articleRepo: articleRepo})

	_, resp := callMCP(t, h, `{"method":"searchArticles","params":{"query":"generics"}}`)
	text := resultText(t, resp)

	for _, want := range []string{
		`# Search Results for "generics"`,
		"## 1. Go generics",
		"- URL: https://example.com/post",
		"- Author: alice",
		"- Published: 2025-06-01",
		"a summary",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}

func TestHandler_SearchArticles_NoMatch(t *testing.T) {
	h := newHandler(handlerConfig{})

	_, resp := callMCP(t, h, `{"method":"searchArticles","params":{"query":"nothing"}}`)

	if text := resultText(t, resp); text != `No articles found matching the query: "nothing"` {
		t.Errorf("text = %q", text)
	}
}
