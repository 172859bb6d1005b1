package feedparse

import (
	"io"
	"time"

	"github.com/araddon/dateparse"

	"mcp-rss-crawler/internal/domain/entity"
)

// UnknownFeedTitle is the sentinel title returned when a document does not
// match any supported dialect or contains no entries.
const UnknownFeedTitle = "Unknown Feed"

// Feed is the normalized result of parsing one feed document.
type Feed struct {
	Title       string
	Description string
	Link        string
	Items       []*entity.Item
}

// ParseFeed decodes and normalizes a feed document. Malformed XML is an
// error; a well-formed document of unknown shape is not, it yields the
// "Unknown Feed" sentinel with an empty item list.
func ParseFeed(r io.Reader, feedURL string) (*Feed, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Normalize(Detect(doc), feedURL, time.Now), nil
}

// Normalize converts a detected document into the common feed shape.
// The now function supplies the fallback published timestamp for entries
// that carry no usable date; it is injected so tests stay deterministic.
func Normalize(doc Document, feedURL string, now func() time.Time) *Feed {
	if doc.Dialect == DialectUnrecognized || len(doc.Entries) == 0 {
		return &Feed{Title: UnknownFeedTitle, Items: []*entity.Item{}}
	}

	f := &Feed{
		Title:       doc.Channel.ChildText("title"),
		Description: channelDescription(doc),
		Link:        channelLink(doc),
	}
	f.Items = make([]*entity.Item, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		f.Items = append(f.Items, normalizeEntry(e, feedURL, now))
	}
	return f
}

func channelDescription(doc Document) string {
	if doc.Dialect == DialectAtom {
		return doc.Channel.ChildText("subtitle")
	}
	return doc.Channel.ChildText("description")
}

func channelLink(doc Document) string {
	return linkValue(doc.Channel.First("link"))
}

// normalizeEntry applies the per-field fallback chains shared by all
// dialects. Every chain takes the first present value; unparseable dates
// are treated the same as absent ones so the chain keeps going.
func normalizeEntry(e *Node, feedURL string, now func() time.Time) *entity.Item {
	title := e.ChildText("title")

	published, ok := firstTimestamp(e, "pubDate", "published", "updated", "dc:date")
	if !ok {
		published = now().Unix()
	}
	updated := published
	if ts, ok := timestampOf(e, "updated"); ok {
		updated = ts
	}

	id := e.ChildText("guid")
	if id == "" {
		id = e.ChildText("id")
	}
	if id == "" {
		id = entity.NewItemID(feedURL, title)
	}

	return &entity.Item{
		ID:         id,
		Title:      title,
		Link:       linkValue(e.First("link")),
		Summary:    firstText(e, "description", "summary", "content", "content:encoded"),
		Content:    firstText(e, "content:encoded", "content"),
		Published:  published,
		Updated:    updated,
		Author:     authorValue(e),
		Categories: categoryValues(e),
	}
}

// linkValue handles both `<link>url</link>` and Atom's `<link href="url"/>`.
func linkValue(link *Node) string {
	if link == nil {
		return ""
	}
	if link.Text != "" {
		return link.Text
	}
	return link.ChildText("href")
}

// authorValue handles both a plain author string and Atom's
// `<author><name>...</name></author>`, then falls back to dc:creator.
func authorValue(e *Node) string {
	if author := e.First("author"); author != nil {
		if author.Text != "" {
			return author.Text
		}
		if name := author.ChildText("name"); name != "" {
			return name
		}
	}
	return e.ChildText("dc:creator")
}

// categoryValues collects category texts in document order, dropping
// empty entries (attribute-only categories have no text).
func categoryValues(e *Node) []string {
	nodes := e.All("category")
	if len(nodes) == 0 {
		return nil
	}
	out := make([]string, 0, len(nodes))
	for _, c := range nodes {
		if c.Text != "" {
			out = append(out, c.Text)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstText(e *Node, names ...string) string {
	for _, name := range names {
		if v := e.ChildText(name); v != "" {
			return v
		}
	}
	return ""
}

func firstTimestamp(e *Node, names ...string) (int64, bool) {
	for _, name := range names {
		if ts, ok := timestampOf(e, name); ok {
			return ts, true
		}
	}
	return 0, false
}

func timestampOf(e *Node, name string) (int64, bool) {
	raw := e.ChildText(name)
	if raw == "" {
		return 0, false
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}
