package db

import (
	"database/sql"
)

// MigrateUp creates the crawler schema. Every statement is idempotent so
// the migration can run on every startup. The column types are chosen from
// the intersection both backends accept: TEXT everywhere, BIGINT for Unix
// second timestamps.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS feeds (
    id           TEXT PRIMARY KEY,
    url          TEXT NOT NULL UNIQUE,
    name         TEXT NOT NULL,
    category     TEXT NOT NULL DEFAULT '',
    last_updated BIGINT NOT NULL DEFAULT 0
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS items (
    id        TEXT PRIMARY KEY,
    feed_id   TEXT NOT NULL REFERENCES feeds(id) ON DELETE CASCADE,
    title     TEXT,
    link      TEXT,
    summary   TEXT,
    content   TEXT,
    published BIGINT NOT NULL DEFAULT 0,
    updated   BIGINT NOT NULL DEFAULT 0,
    author    TEXT
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    item_id  TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    category TEXT NOT NULL,
    PRIMARY KEY (item_id, position)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS keywords (
    id         TEXT PRIMARY KEY,
    keyword    TEXT NOT NULL UNIQUE,
    created_at BIGINT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id             TEXT PRIMARY KEY,
    url            TEXT NOT NULL UNIQUE,
    title          TEXT,
    content        TEXT,
    html           TEXT,
    author         TEXT,
    published_date TEXT,
    image_url      TEXT,
    summary        TEXT,
    fetched_at     BIGINT NOT NULL
)`); err != nil {
		return err
	}

	// パフォーマンス最適化: インデックス追加
	indexes := []string{
		// ORDER BY published DESC で使用(全クエリで使用)
		`CREATE INDEX IF NOT EXISTS idx_items_published ON items(published DESC)`,
		// フィード別アイテム取得用
		`CREATE INDEX IF NOT EXISTS idx_items_feed_id ON items(feed_id)`,
		// カテゴリ絞り込み用
		`CREATE INDEX IF NOT EXISTS idx_categories_category ON categories(category)`,
		// 記事一覧の取得順(fetched_at DESC)
		`CREATE INDEX IF NOT EXISTS idx_articles_fetched_at ON articles(fetched_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the crawler schema in reverse dependency order.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS categories`,
		`DROP TABLE IF EXISTS items`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS keywords`,
		`DROP TABLE IF EXISTS feeds`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
