package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "modernc.org/sqlite"

	"mcp-rss-crawler/internal/infra/adapter/persistence/postgres"
	"mcp-rss-crawler/internal/infra/adapter/persistence/sqlite"
	"mcp-rss-crawler/internal/infra/db"
	"mcp-rss-crawler/internal/infra/scraper"
	"mcp-rss-crawler/internal/observability/logging"
	"mcp-rss-crawler/internal/repository"
	"mcp-rss-crawler/pkg/config"

	articleUC "mcp-rss-crawler/internal/usecase/article"
	feedsUC "mcp-rss-crawler/internal/usecase/feeds"
	keywordUC "mcp-rss-crawler/internal/usecase/keyword"

	hhttp "mcp-rss-crawler/internal/handler/http"
	hfeeds "mcp-rss-crawler/internal/handler/http/feeds"
	hmcp "mcp-rss-crawler/internal/handler/http/mcp"
	"mcp-rss-crawler/internal/handler/http/requestid"

	_ "mcp-rss-crawler/docs" // swagger docs
)

// @title           MCP RSS Crawler API
// @version         1.0
// @description     RSS/Atom/RDF フィード集約サービスの REST API
// @description     フィードとキーワードの管理、記事のオンデマンド取得、MCP ツールインターフェースを提供します。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5556
// @BasePath  /

func main() {
	// .env is optional; environment variables win when both are present
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

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
	logger.Info("database ready", slog.String("driver", string(driver)))

	handler, err := setupServer(logger, database, driver, cfg)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler, cfg)
}

// repos bundles the persistence adapters selected for the active driver.
type repos struct {
	feeds    repository.FeedRepository
	items    repository.ItemRepository
	keywords repository.KeywordRepository
	articles repository.ArticleRepository
}

// newRepos builds the repository set matching the database driver.
func newRepos(database *sql.DB, driver db.Driver) repos {
	if driver == db.DriverPostgres {
		return repos{
			feeds:    postgres.NewFeedRepo(database),
			items:    postgres.NewItemRepo(database),
			keywords: postgres.NewKeywordRepo(database),
			articles: postgres.NewArticleRepo(database),
		}
	}
	return repos{
		feeds:    sqlite.NewFeedRepo(database),
		items:    sqlite.NewItemRepo(database),
		keywords: sqlite.NewKeywordRepo(database),
		articles: sqlite.NewArticleRepo(database),
	}
}

// setupServer wires repositories, services, routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, driver db.Driver, cfg config.AppConfig) (http.Handler, error) {
	r := newRepos(database, driver)

	fetchCfg, err := scraper.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load fetch config: %w", err)
	}

	fetcher := scraper.NewFeedFetcher(fetchCfg)
	articleScraper := scraper.NewArticleScraper(fetchCfg)

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

	feedSvc := feedsUC.NewService(r.feeds, r.items, r.keywords, fetcher, cfg.FetchConcurrency, defaults)
	articleSvc := articleUC.NewService(r.articles, articleScraper)
	keywordSvc := keywordUC.NewService(r.keywords)

	mux := http.NewServeMux()
	hfeeds.Register(mux, feedSvc)
	hmcp.Register(mux, &hmcp.Handler{
		Feeds:    feedSvc,
		Articles: articleSvc,
		Keywords: keywordSvc,
	})

	mux.Handle("GET /status", hhttp.StatusHandler{DB: database, Service: cfg.ServiceName})
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(logger, mux, cfg.RequestTimeout), nil
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Recover → Logging → Timeout → Input Validation → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, requestTimeout time.Duration) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, cfg config.AppConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
