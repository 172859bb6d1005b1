package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"mcp-rss-crawler/internal/handler/http/respond"
	articleUC "mcp-rss-crawler/internal/usecase/article"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
	keywordUC "mcp-rss-crawler/internal/usecase/keyword"
)

// Handler dispatches MCP tool calls to the use case services.
type Handler struct {
	Feeds    *feedsUC.Service
	Articles *articleUC.Service
	Keywords *keywordUC.Service
}

type toolFunc func(ctx context.Context, params json.RawMessage) *ToolResult

// tools maps method names to their implementations.
func (h *Handler) tools() map[string]toolFunc {
	return map[string]toolFunc{
		"fetchRssFeeds":           h.fetchRssFeeds,
		"getLatestRssFeeds":       h.getLatestRssFeeds,
		"fetchRssFeedsByCategory": h.fetchRssFeedsByCategory,
		"searchRssFeeds":          h.searchRssFeeds,
		"listRssFeeds":            h.listRssFeeds,
		"addRssFeed":              h.addRssFeed,
		"removeRssFeed":           h.removeRssFeed,
		"listKeywords":            h.listKeywords,
		"addKeyword":              h.addKeyword,
		"removeKeyword":           h.removeKeyword,
		"getArticlesByKeywords":   h.getArticlesByKeywords,
		"fetchArticle":            h.fetchArticle,
		"getArticles":             h.getArticles,
		"searchArticles":          h.searchArticles,
	}
}

// ServeHTTP MCPツール呼び出し
// @Summary      MCPツール呼び出し
// @Description  MCP形式のツール呼び出しを受け付けます。bodyは {method, params} 形式です。
// @Tags         mcp
// @Accept       json
// @Produce      json
// @Param        request  body     Request  true  "ツール呼び出し"
// @Success      200 {object} Response "ツール実行結果"
// @Failure      500 {object} Response "プロトコルエラー"
// @Router       /mcp [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("mcp request decode failed", "error", err)
		respond.JSON(w, http.StatusInternalServerError, Response{
			Error: &Error{
				Code:    CodeInternalError,
				Message: "Internal error",
				Data:    err.Error(),
			},
		})
		return
	}

	tool, ok := h.tools()[req.Method]
	if !ok {
		respond.JSON(w, http.StatusOK, Response{
			Error: &Error{Code: CodeMethodNotFound, Message: "Method not found"},
		})
		return
	}

	result := tool(r.Context(), req.Params)
	respond.JSON(w, http.StatusOK, Response{Result: result})
}

// Register registers the MCP endpoint with the given mux.
func Register(mux *http.ServeMux, h *Handler) {
	mux.Handle("POST   /mcp", h)
}
