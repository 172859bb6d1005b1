package metrics

import "time"

// RecordItemsFetched records the number of items fetched from a feed.
// This metric helps track crawling performance and feed activity.
func RecordItemsFetched(feedName, feedID string, count int) {
	ItemsFetchedTotal.WithLabelValues(feedName, feedID).Add(float64(count))
}

// RecordFeedCrawl records metrics for a feed crawl operation.
func RecordFeedCrawl(feedID string, duration time.Duration, itemsFound int) {
	FeedCrawlDuration.WithLabelValues(feedID).Observe(duration.Seconds())

	if itemsFound > 0 {
		RecordItemsFetched("", feedID, itemsFound)
	}
}

// RecordFeedCrawlError records an error during feed crawling.
// ErrorType should describe the failure class (e.g., "fetch_failed", "store_failed").
func RecordFeedCrawlError(feedID, errorType string) {
	FeedCrawlErrors.WithLabelValues(feedID, errorType).Inc()
}

// UpdateFeedsTotal updates the total count of subscribed feeds.
// This gauge should be updated whenever the subscription list changes.
func UpdateFeedsTotal(count int) {
	FeedsTotal.Set(float64(count))
}

// RecordArticleScrapeSuccess records a successful article scrape operation.
// This tracks both the duration and size of the extracted content.
//
// Parameters:
//   - duration: Time taken to fetch and extract the article
//   - size: Size of extracted content in bytes
//
// Example:
//
//	start := time.Now()
//	article, err := scraper.Scrape(ctx, url)
//	if err == nil {
//	    RecordArticleScrapeSuccess(time.Since(start), len(article.Content))
//	}
func RecordArticleScrapeSuccess(duration time.Duration, size int) {
	ArticleScrapeAttemptsTotal.WithLabelValues("success").Inc()
	ArticleScrapeDuration.Observe(duration.Seconds())
	ArticleScrapeSize.Observe(float64(size))
}

// RecordArticleScrapeFailed records a failed article scrape operation.
//
// Parameters:
//   - duration: Time taken before the scrape failed
func RecordArticleScrapeFailed(duration time.Duration) {
	ArticleScrapeAttemptsTotal.WithLabelValues("failure").Inc()
	ArticleScrapeDuration.Observe(duration.Seconds())
}

// RecordArticleScrapeCached records a scrape request served from the
// article cache without touching the network.
func RecordArticleScrapeCached() {
	ArticleScrapeAttemptsTotal.WithLabelValues("cached").Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_items", "upsert_feed").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
