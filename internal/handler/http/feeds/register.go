package feeds

import (
	"net/http"

	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
)

// Register registers all feed-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *feedsUC.Service) {
	mux.Handle("GET    /api/feeds", LatestHandler{Svc: svc})
	mux.Handle("GET    /api/feeds/category/{category}", CategoryHandler{Svc: svc})
	mux.Handle("GET    /api/feeds/search", SearchHandler{Svc: svc})
	mux.Handle("GET    /api/feeds/list", ListHandler{Svc: svc})
}
