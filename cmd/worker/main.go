package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	_ "modernc.org/sqlite"

	"mcp-rss-crawler/internal/handler/http/respond"
	"mcp-rss-crawler/internal/infra/adapter/persistence/postgres"
	"mcp-rss-crawler/internal/infra/adapter/persistence/sqlite"
	"mcp-rss-crawler/internal/infra/db"
	"mcp-rss-crawler/internal/infra/scraper"
	workerPkg "mcp-rss-crawler/internal/infra/worker"
	"mcp-rss-crawler/internal/observability/logging"
	"mcp-rss-crawler/internal/repository"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
	"mcp-rss-crawler/pkg/config"
)

func main() {
	// .env is optional; environment variables win when both are present
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database, driver := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load worker configuration (fail-open strategy)
	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("crawl_timeout", workerConfig.CrawlTimeout),
		slog.Int("refresh_limit", workerConfig.RefreshLimit),
	)

	svc, err := buildFeedService(database, driver)
	if err != nil {
		logger.Error("failed to build feed service", slog.Any("error", err))
		os.Exit(1)
	}

	// Health and metrics endpoints for the worker process
	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", workerConfig.HealthPort), logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	go serveMetrics(logger)

	startCronWorker(logger, svc, workerConfig, workerMetrics, healthServer)
}

// buildFeedService assembles the feed service with the adapters for the
// active database driver.
func buildFeedService(database *sql.DB, driver db.Driver) (*feedsUC.Service, error) {
	var (
		feedRepo    repository.FeedRepository
		itemRepo    repository.ItemRepository
		keywordRepo repository.KeywordRepository
	)
	if driver == db.DriverPostgres {
		feedRepo = postgres.NewFeedRepo(database)
		itemRepo = postgres.NewItemRepo(database)
		keywordRepo = postgres.NewKeywordRepo(database)
	} else {
		feedRepo = sqlite.NewFeedRepo(database)
		itemRepo = sqlite.NewItemRepo(database)
		keywordRepo = sqlite.NewKeywordRepo(database)
	}

	fetchCfg, err := scraper.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load fetch config: %w", err)
	}
	fetcher := scraper.NewFeedFetcher(fetchCfg)

	defaultFeeds, err := config.DefaultFeeds()
	if err != nil {
		return nil, fmt.Errorf("load default feeds: %w", err)
	}
	defaults := make([]feedsUC.Default, 0, len(defaultFeeds))
	for _, feed := range defaultFeeds {
		defaults = append(defaults, feedsUC.Default{
			URL:      feed.URL,
			Name:     feed.Name,
			Category: feed.Category,
		})
	}

	concurrency := config.GetEnvInt("FETCH_CONCURRENCY", 8)
	return feedsUC.NewService(feedRepo, itemRepo, keywordRepo, fetcher, concurrency, defaults), nil
}

// serveMetrics exposes the Prometheus metrics endpoint for the worker.
func serveMetrics(logger *slog.Logger) {
	addr := fmt.Sprintf(":%d", config.GetEnvInt("WORKER_METRICS_PORT", 9092))
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("metrics server starting", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics server failed", slog.Any("error", err))
	}
}

// startCronWorker starts the cron scheduler and runs the refresh job periodically.
func startCronWorker(logger *slog.Logger, svc *feedsUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runRefreshJob(logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// Mark as ready after cron is set up
	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}

// runRefreshJob executes a single refresh run with timeout and error handling.
func runRefreshJob(logger *slog.Logger, svc *feedsUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	logger.Info("refresh started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.CrawlTimeout)
	defer cancel()

	envelope, err := svc.RefreshAll(ctx, cfg.RefreshLimit)
	if err != nil {
		// 機密情報をマスクしてログ出力
		logger.Error("refresh failed", slog.Any("error", respond.SanitizeError(err)))
		metrics.RecordRun("failure")
		metrics.RecordDuration(time.Since(startTime).Seconds())
		return
	}

	metrics.RecordRun("success")
	metrics.RecordDuration(time.Since(startTime).Seconds())
	metrics.RecordItemsAggregated(len(envelope.Items))
	metrics.RecordLastSuccess()

	logger.Info("refresh completed",
		slog.Int("items", len(envelope.Items)),
		slog.Duration("duration", time.Since(startTime)),
	)
}
