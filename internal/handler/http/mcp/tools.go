package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
	keywordUC "mcp-rss-crawler/internal/usecase/keyword"
)

// limitParams covers tools whose only parameter is a result limit.
type limitParams struct {
	Limit int `json:"limit"`
}

// decodeParams fills dst from the raw params. Absent params leave dst at
// its zero value, matching tools whose parameters are all optional.
func decodeParams(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func (h *Handler) fetchRssFeeds(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p limitParams
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error fetching RSS feeds: " + err.Error())
	}
	env, err := h.Feeds.RefreshAll(ctx, p.Limit)
	if err != nil {
		return errorResult("Error fetching RSS feeds: " + err.Error())
	}
	return jsonResult(env)
}

func (h *Handler) getLatestRssFeeds(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p limitParams
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error retrieving latest RSS feeds: " + err.Error())
	}
	return jsonResult(h.Feeds.Latest(ctx, p.Limit))
}

func (h *Handler) fetchRssFeedsByCategory(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		Category string `json:"category"`
		Limit    int    `json:"limit"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error fetching RSS feeds by category: " + err.Error())
	}
	if p.Category == "" {
		return errorResult("Error fetching RSS feeds by category: category is required")
	}
	return jsonResult(h.Feeds.ByCategory(ctx, p.Category, p.Limit))
}

func (h *Handler) searchRssFeeds(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error searching RSS feeds: " + err.Error())
	}
	if p.Query == "" {
		return errorResult("Error searching RSS feeds: query is required")
	}
	return jsonResult(h.Feeds.SearchItems(ctx, p.Query, p.Limit))
}

func (h *Handler) listRssFeeds(ctx context.Context, _ json.RawMessage) *ToolResult {
	list, err := h.Feeds.ListFeeds(ctx)
	if err != nil {
		return errorResult("Error listing RSS feeds: " + err.Error())
	}
	type feedInfo struct {
		ID       string `json:"id"`
		URL      string `json:"url"`
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
	}
	out := make([]feedInfo, 0, len(list))
	for _, f := range list {
		out = append(out, feedInfo{ID: f.ID, URL: f.URL, Name: f.Name, Category: f.Category})
	}
	return jsonResult(out)
}

func (h *Handler) addRssFeed(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		URL      string `json:"url"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error adding RSS feed: " + err.Error())
	}
	feed, err := h.Feeds.AddFeed(ctx, p.URL, p.Name, p.Category)
	if err != nil {
		return errorResult("Error adding RSS feed: " + err.Error())
	}
	return textResult(fmt.Sprintf("Successfully added RSS feed: %s (%s)", feed.Name, feed.URL))
}

func (h *Handler) removeRssFeed(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		URL string `json:"url"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error removing RSS feed: " + err.Error())
	}
	if err := h.Feeds.RemoveFeed(ctx, p.URL); err != nil {
		if errors.Is(err, feedsUC.ErrFeedNotFound) {
			return errorResult(fmt.Sprintf("Failed to remove RSS feed: %s. The feed may not exist.", p.URL))
		}
		return errorResult("Error removing RSS feed: " + err.Error())
	}
	return textResult("Successfully removed RSS feed: " + p.URL)
}

func (h *Handler) listKeywords(ctx context.Context, _ json.RawMessage) *ToolResult {
	keywords, err := h.Keywords.List(ctx)
	if err != nil {
		return errorResult("Error listing keywords: " + err.Error())
	}
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, kw.Keyword)
	}
	return jsonResult(out)
}

func (h *Handler) addKeyword(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		Keyword string `json:"keyword"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error adding keyword: " + err.Error())
	}
	kw, err := h.Keywords.Add(ctx, p.Keyword)
	if err != nil {
		if errors.Is(err, keywordUC.ErrDuplicateKeyword) {
			return errorResult(fmt.Sprintf("Failed to add interest keyword: %q. The keyword may already exist.", p.Keyword))
		}
		return errorResult("Error adding keyword: " + err.Error())
	}
	return textResult(fmt.Sprintf("Successfully added interest keyword: %q", kw.Keyword))
}

func (h *Handler) removeKeyword(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		Keyword string `json:"keyword"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error removing keyword: " + err.Error())
	}
	if err := h.Keywords.Remove(ctx, p.Keyword); err != nil {
		if errors.Is(err, keywordUC.ErrKeywordNotFound) {
			return errorResult(fmt.Sprintf("Failed to remove interest keyword: %q. The keyword may not exist.", p.Keyword))
		}
		return errorResult("Error removing keyword: " + err.Error())
	}
	return textResult(fmt.Sprintf("Successfully removed interest keyword: %q", p.Keyword))
}

func (h *Handler) getArticlesByKeywords(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p limitParams
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error getting articles by keywords: " + err.Error())
	}
	return jsonResult(h.Feeds.ByKeywords(ctx, p.Limit))
}

func (h *Handler) fetchArticle(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		URL string `json:"url"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error fetching article: " + err.Error())
	}
	art, err := h.Articles.FetchFromURL(ctx, p.URL)
	if err != nil {
		return errorResult("Failed to fetch article from the URL.")
	}
	title := art.Title
	if title == "" {
		title = "Article"
	}
	return textResult(fmt.Sprintf("# %s\n\n%s", title, art.Content))
}

func (h *Handler) getArticles(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p limitParams
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error getting articles: " + err.Error())
	}
	articles, err := h.Articles.List(ctx, p.Limit)
	if err != nil {
		return errorResult("Error getting articles: " + err.Error())
	}
	if len(articles) == 0 {
		return textResult("No articles found in the database.")
	}
	return textResult(formatArticleList("# Articles\n\n", articles))
}

func (h *Handler) searchArticles(ctx context.Context, raw json.RawMessage) *ToolResult {
	var p struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := decodeParams(raw, &p); err != nil {
		return errorResult("Error searching articles: " + err.Error())
	}
	articles, err := h.Articles.Search(ctx, p.Query, p.Limit)
	if err != nil {
		return errorResult("Error searching articles: " + err.Error())
	}
	if len(articles) == 0 {
		return textResult(fmt.Sprintf("No articles found matching the query: %q", p.Query))
	}
	heading := fmt.Sprintf("# Search Results for %q\n\n", p.Query)
	return textResult(formatArticleList(heading, articles))
}
