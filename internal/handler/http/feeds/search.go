package feeds

import (
	"net/http"

	"mcp-rss-crawler/internal/handler/http/respond"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
)

type SearchHandler struct{ Svc *feedsUC.Service }

// ServeHTTP 記事検索
// @Summary      記事検索
// @Description  保存済み記事のタイトルと概要を検索します。
// @Tags         feeds
// @Produce      json
// @Param        q      query    string  true   "検索クエリ"
// @Param        limit  query    int     false  "取得件数" default(10) minimum(1) maximum(50)
// @Success      200 {object} StreamResponse "検索結果"
// @Failure      400 {object} ErrorResponse "クエリ未指定またはlimitが不正"
// @Router       /api/feeds/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		badRequest(w, "Search query is required")
		return
	}
	limit, err := parseLimit(r.URL)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	env := h.Svc.SearchItems(r.Context(), query, limit)
	resp := newStreamResponse(env)
	resp.Query = query
	respond.JSON(w, http.StatusOK, resp)
}
