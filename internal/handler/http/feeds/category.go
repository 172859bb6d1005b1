package feeds

import (
	"net/http"

	"mcp-rss-crawler/internal/handler/http/respond"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
)

type CategoryHandler struct{ Svc *feedsUC.Service }

// ServeHTTP カテゴリ別記事取得
// @Summary      カテゴリ別記事取得
// @Description  指定カテゴリに属するフィードの記事を取得します。
// @Tags         feeds
// @Produce      json
// @Param        category  path     string  true   "カテゴリ名"
// @Param        limit     query    int     false  "取得件数" default(10) minimum(1) maximum(50)
// @Success      200 {object} StreamResponse "カテゴリ別記事一覧"
// @Failure      400 {object} ErrorResponse "limitが不正"
// @Router       /api/feeds/category/{category} [get]
func (h CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		badRequest(w, "category is required")
		return
	}
	limit, err := parseLimit(r.URL)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	env := h.Svc.ByCategory(r.Context(), category, limit)
	resp := newStreamResponse(env)
	resp.Category = category
	respond.JSON(w, http.StatusOK, resp)
}
