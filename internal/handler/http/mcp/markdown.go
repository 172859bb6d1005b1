package mcp

import (
	"fmt"
	"strings"

	"mcp-rss-crawler/internal/domain/entity"
)

// formatArticleList renders cached articles as a markdown listing for
// tool responses.
func formatArticleList(heading string, articles []*entity.Article) string {
	var b strings.Builder
	b.WriteString(heading)

	for i, art := range articles {
		title := art.Title
		if title == "" {
			title = "Untitled Article"
		}
		fmt.Fprintf(&b, "## %d. %s\n", i+1, title)
		fmt.Fprintf(&b, "- URL: %s\n", art.URL)
		if art.Author != "" {
			fmt.Fprintf(&b, "- Author: %s\n", art.Author)
		}
		if art.PublishedDate != "" {
			fmt.Fprintf(&b, "- Published: %s\n", art.PublishedDate)
		}
		if art.Summary != "" {
			fmt.Fprintf(&b, "\n%s\n\n", art.Summary)
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}
