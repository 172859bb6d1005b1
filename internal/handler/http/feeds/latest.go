// Package feeds provides HTTP handlers for the aggregated feed API.
package feeds

import (
	"net/http"

	"mcp-rss-crawler/internal/handler/http/respond"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
)

type LatestHandler struct{ Svc *feedsUC.Service }

// ServeHTTP 最新記事取得
// @Summary      最新記事取得
// @Description  保存済みの全フィードから最新の記事を取得します。
// @Tags         feeds
// @Produce      json
// @Param        limit  query    int  false  "取得件数" default(10) minimum(1) maximum(50)
// @Success      200 {object} StreamResponse "最新記事一覧"
// @Failure      400 {object} ErrorResponse "limitが不正"
// @Router       /api/feeds [get]
func (h LatestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	env := h.Svc.Latest(r.Context(), limit)
	respond.JSON(w, http.StatusOK, newStreamResponse(env))
}
