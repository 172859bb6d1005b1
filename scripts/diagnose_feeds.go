// Command diagnose_feeds checks every subscribed feed for availability
// and parseability, and prints a per-feed report. It is a standalone
// operational tool: point it at the same database as the server (or run
// it with no database to check the built-in defaults) to find feeds
// that stopped publishing, moved, or serve broken XML.
//
// Usage:
//
//	go run scripts/diagnose_feeds.go [-json] [-timeout 15s]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"mcp-rss-crawler/internal/infra/db"
	"mcp-rss-crawler/pkg/config"
)

// FeedDiagnostic is the diagnostic result for a single feed.
type FeedDiagnostic struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Status       string `json:"status"` // "OK", "FETCH_ERROR", "PARSE_ERROR", "EMPTY"
	FeedType     string `json:"feed_type,omitempty"`
	ItemCount    int    `json:"item_count"`
	LatestDate   string `json:"latest_date,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
}

type target struct {
	Name string
	URL  string
}

func main() {
	jsonOut := flag.Bool("json", false, "emit results as JSON instead of a table")
	timeout := flag.Duration("timeout", 15*time.Second, "per-feed fetch timeout")
	flag.Parse()

	targets, err := loadTargets()
	if err != nil {
		log.Fatalf("load feed list: %v", err)
	}
	if len(targets) == 0 {
		log.Fatal("no feeds to diagnose")
	}

	parser := gofeed.NewParser()
	parser.UserAgent = "mcp-rss-crawler/1.0 (diagnostics)"

	results := make([]FeedDiagnostic, 0, len(targets))
	for _, t := range targets {
		results = append(results, diagnose(parser, t, *timeout))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("encode results: %v", err)
		}
		return
	}
	printTable(results)
}

// loadTargets reads the subscriptions from the database, falling back
// to the embedded default list when the table is empty or unreadable.
func loadTargets() ([]target, error) {
	targets, err := loadFromDB()
	if err == nil && len(targets) > 0 {
		return targets, nil
	}
	if err != nil {
		log.Printf("database unavailable, using built-in defaults: %v", err)
	}

	defaults, err := config.DefaultFeeds()
	if err != nil {
		return nil, err
	}
	out := make([]target, 0, len(defaults))
	for _, f := range defaults {
		out = append(out, target{Name: f.Name, URL: f.URL})
	}
	return out, nil
}

func loadFromDB() ([]target, error) {
	database, _ := db.Open()
	defer database.Close()

	rows, err := database.Query(`SELECT name, url FROM feeds ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []target
	for rows.Next() {
		var t target
		if err := rows.Scan(&t.Name, &t.URL); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func diagnose(parser *gofeed.Parser, t target, timeout time.Duration) FeedDiagnostic {
	result := FeedDiagnostic{Name: t.Name, URL: t.URL}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	feed, err := parser.ParseURLWithContext(t.URL, ctx)
	result.ResponseTime = time.Since(start).Milliseconds()

	if err != nil {
		if _, ok := err.(gofeed.HTTPError); ok {
			result.Status = "FETCH_ERROR"
		} else {
			result.Status = "PARSE_ERROR"
		}
		result.ErrorMessage = err.Error()
		return result
	}

	result.FeedType = feed.FeedType
	result.ItemCount = len(feed.Items)
	if result.ItemCount == 0 {
		result.Status = "EMPTY"
		return result
	}

	result.Status = "OK"
	for _, item := range feed.Items {
		if item.PublishedParsed != nil {
			published := item.PublishedParsed.Format(time.RFC3339)
			if published > result.LatestDate {
				result.LatestDate = published
			}
		}
	}
	return result
}

func printTable(results []FeedDiagnostic) {
	ok := 0
	for _, r := range results {
		marker := "NG"
		if r.Status == "OK" {
			marker = "OK"
			ok++
		}
		fmt.Printf("[%s] %-40s %-11s items=%-4d latest=%-25s %4dms\n",
			marker, truncate(r.Name, 40), r.Status, r.ItemCount, r.LatestDate, r.ResponseTime)
		if r.ErrorMessage != "" {
			fmt.Printf("     %s\n", r.ErrorMessage)
		}
	}
	fmt.Printf("\n%d/%d feeds healthy\n", ok, len(results))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
