package db

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names the SQL backend a connection was opened against.
// Adapters are selected by this value.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "pgx"
)

const (
	defaultDBDirName = ".mcp-rss-crawler"
	defaultDBFile    = "feeds.db"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Open creates and configures a new database connection pool.
// When DATABASE_URL is set it connects to PostgreSQL via pgx; otherwise it
// opens (and creates if needed) the local SQLite file under DB_DIR/DB_FILE.
func Open() (*sql.DB, Driver) {
	driver, dsn := resolveDSN()

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		log.Fatal(err)
	}

	// Apply connection pool configuration
	cfg := getConnectionConfigFromEnv(driver)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", string(driver)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	slog.Info("database connection established successfully")
	return db, driver
}

// resolveDSN decides which backend to use. DATABASE_URL wins; without it
// the SQLite path is built from DB_DIR (default ~/.mcp-rss-crawler) and
// DB_FILE (default feeds.db), creating the directory on first use.
func resolveDSN() (Driver, string) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return DriverPostgres, dsn
	}

	dir := os.Getenv("DB_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("failed to resolve home directory: %v", err)
		}
		dir = filepath.Join(home, defaultDBDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("failed to create database directory: %v", err)
	}

	file := os.Getenv("DB_FILE")
	if file == "" {
		file = defaultDBFile
	}

	return DriverSQLite, sqliteDSN(filepath.Join(dir, file))
}

// sqliteDSN builds the modernc driver DSN with the pragmas the crawler
// relies on: WAL for concurrent reads during a crawl, a busy timeout so
// the worker and API do not fail on transient lock contention.
func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	return "file:" + path + "?" + q.Encode()
}

// getConnectionConfigFromEnv reads connection pool configuration from environment variables.
// Falls back to default values if not set. SQLite allows a single writer,
// so its pool is capped at one open connection unless overridden.
func getConnectionConfigFromEnv(driver Driver) ConnectionConfig {
	cfg := DefaultConnectionConfig()
	if driver == DriverSQLite {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
	}

	if maxOpen := os.Getenv("DB_MAX_OPEN_CONNS"); maxOpen != "" {
		if val, err := strconv.Atoi(maxOpen); err == nil && val > 0 {
			cfg.MaxOpenConns = val
		}
	}

	if maxIdle := os.Getenv("DB_MAX_IDLE_CONNS"); maxIdle != "" {
		if val, err := strconv.Atoi(maxIdle); err == nil && val > 0 {
			cfg.MaxIdleConns = val
		}
	}

	if lifetime := os.Getenv("DB_CONN_MAX_LIFETIME"); lifetime != "" {
		if val, err := time.ParseDuration(lifetime); err == nil && val > 0 {
			cfg.ConnMaxLifetime = val
		}
	}

	if idleTime := os.Getenv("DB_CONN_MAX_IDLE_TIME"); idleTime != "" {
		if val, err := time.ParseDuration(idleTime); err == nil && val > 0 {
			cfg.ConnMaxIdleTime = val
		}
	}

	return cfg
}
