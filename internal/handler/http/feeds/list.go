package feeds

import (
	"net/http"

	"mcp-rss-crawler/internal/handler/http/respond"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
)

type ListHandler struct{ Svc *feedsUC.Service }

// ServeHTTP 購読フィード一覧取得
// @Summary      購読フィード一覧取得
// @Description  購読中のフィード一覧を取得します。
// @Tags         feeds
// @Produce      json
// @Success      200 {object} ListResponse "フィード一覧"
// @Failure      500 {object} ErrorResponse "サーバーエラー"
// @Router       /api/feeds/list [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListFeeds(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	out := make([]FeedDTO, 0, len(list))
	for _, f := range list {
		out = append(out, FeedDTO{
			ID: f.ID, URL: f.URL, Name: f.Name,
			Category:    f.Category,
			LastUpdated: f.LastUpdated,
		})
	}
	respond.JSON(w, http.StatusOK, ListResponse{
		Status: "success",
		Count:  len(out),
		Feeds:  out,
	})
}
