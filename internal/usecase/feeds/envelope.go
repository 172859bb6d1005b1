package feeds

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// Envelope is the aggregated feed document returned by every read
// operation. The shape follows the Google Reader style stream format so
// existing reader clients can consume it unchanged.
type Envelope struct {
	Direction   string         `json:"direction"`
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Self        EnvelopeSelf   `json:"self"`
	Updated     int64          `json:"updated"`
	UpdatedUsec string         `json:"updatedUsec"`
	Items       []EnvelopeItem `json:"items"`
}

type EnvelopeSelf struct {
	Href string `json:"href"`
}

// EnvelopeItem is one article entry inside an Envelope.
type EnvelopeItem struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Published  int64           `json:"published"`
	Updated    int64           `json:"updated"`
	Summary    EnvelopeSummary `json:"summary"`
	Author     string          `json:"author"`
	Categories []string        `json:"categories"`
	Origin     EnvelopeOrigin  `json:"origin"`
	Alternate  []EnvelopeLink  `json:"alternate"`
}

type EnvelopeSummary struct {
	Direction string `json:"direction"`
	Content   string `json:"content"`
}

// EnvelopeOrigin identifies the feed an item came from.
type EnvelopeOrigin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

type EnvelopeLink struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

const selfHref = "/api/feeds"

// newEnvelope wraps items into the common stream shape.
func newEnvelope(id, title, description string, items []EnvelopeItem, now time.Time) *Envelope {
	if items == nil {
		items = []EnvelopeItem{}
	}
	return &Envelope{
		Direction:   "ltr",
		ID:          id,
		Title:       title,
		Description: description,
		Self:        EnvelopeSelf{Href: selfHref},
		Updated:     now.Unix(),
		UpdatedUsec: strconv.FormatInt(now.UnixMilli(), 10) + "000",
		Items:       items,
	}
}

// NewErrorEnvelope builds the empty stream returned when an operation
// cannot produce items. The failure reason goes into the description.
func NewErrorEnvelope(msg string, now time.Time) *Envelope {
	return newEnvelope("error", "Error", msg, nil, now)
}

// envelopeItem converts one stored item plus its feed identity.
func envelopeItem(item *entity.Item, feedTitle, feedURL string) EnvelopeItem {
	categories := item.Categories
	if categories == nil {
		categories = []string{}
	}
	return EnvelopeItem{
		ID:        item.ID,
		Title:     item.Title,
		Published: item.Published,
		Updated:   item.Updated,
		Summary: EnvelopeSummary{
			Direction: "ltr",
			Content:   item.Summary,
		},
		Author:     item.Author,
		Categories: categories,
		Origin: EnvelopeOrigin{
			StreamID: item.FeedID,
			Title:    feedTitle,
			HTMLURL:  feedURL,
		},
		Alternate: []EnvelopeLink{
			{Href: item.Link, Type: "text/html"},
		},
	}
}

// envelopeItems converts query results in order.
func envelopeItems(rows []repository.ItemWithFeed) []EnvelopeItem {
	return lo.Map(rows, func(row repository.ItemWithFeed, _ int) EnvelopeItem {
		return envelopeItem(row.Item, row.FeedTitle, row.FeedURL)
	})
}

// categoryEnvelopeID builds ids like "category/Tech" or "search/golang".
func scopedEnvelopeID(scope, value string) string {
	return fmt.Sprintf("%s/%s", scope, value)
}
