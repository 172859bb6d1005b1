package feeds

import (
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
)

// FeedDTO is the JSON shape of one subscribed feed in list responses.
type FeedDTO struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	LastUpdated int64  `json:"last_updated"`
}

// StreamResponse wraps an aggregated envelope in the API success shape.
type StreamResponse struct {
	Status   string            `json:"status"`
	Category string            `json:"category,omitempty"`
	Query    string            `json:"query,omitempty"`
	Count    int               `json:"count"`
	Feeds    *feedsUC.Envelope `json:"feeds"`
}

// ListResponse wraps the subscription list in the API success shape.
type ListResponse struct {
	Status string    `json:"status"`
	Count  int       `json:"count"`
	Feeds  []FeedDTO `json:"feeds"`
}

// ErrorResponse is the API error shape.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newStreamResponse(env *feedsUC.Envelope) StreamResponse {
	return StreamResponse{
		Status: "success",
		Count:  len(env.Items),
		Feeds:  env,
	}
}
