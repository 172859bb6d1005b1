package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFeedID(t *testing.T) {
	id := NewFeedID("https://example.com/rss.xml")

	assert.True(t, strings.HasPrefix(id, "feed/"))
	// encoded URL portion is capped at 20 characters
	assert.LessOrEqual(t, len(strings.TrimPrefix(id, "feed/")), 20)
}

func TestNewFeedID_Deterministic(t *testing.T) {
	a := NewFeedID("https://example.com/rss.xml")
	b := NewFeedID("https://example.com/rss.xml")

	assert.Equal(t, a, b)
}

func TestNewFeedID_ShortURL(t *testing.T) {
	// Short URLs encode to fewer than 20 characters and are kept whole
	id := NewFeedID("http://a.io")

	assert.True(t, strings.HasPrefix(id, "feed/"))
	assert.NotEmpty(t, strings.TrimPrefix(id, "feed/"))
}

func TestNewItemID(t *testing.T) {
	id := NewItemID("https://example.com/rss.xml", "Hello World")

	assert.Equal(t, "https://example.com/rss.xml/Hello World", id)
}
