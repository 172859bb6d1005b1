// Package sqlite provides SQLite implementations of repository interfaces.
// It covers feeds, items, keywords and scraped articles.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// FeedRepo implements the FeedRepository interface using SQLite.
type FeedRepo struct{ db *sql.DB }

// NewFeedRepo creates a new SQLite-backed feed repository.
func NewFeedRepo(db *sql.DB) repository.FeedRepository {
	return &FeedRepo{db: db}
}

// List retrieves all subscribed feeds ordered by name.
func (repo *FeedRepo) List(ctx context.Context) ([]*entity.Feed, error) {
	const query = `
SELECT id, url, name, category, last_updated
FROM feeds
ORDER BY name
`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	feeds := make([]*entity.Feed, 0, 32)
	for rows.Next() {
		var feed entity.Feed
		err := rows.Scan(&feed.ID, &feed.URL, &feed.Name,
			&feed.Category, &feed.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		feeds = append(feeds, &feed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return feeds, nil
}

func (repo *FeedRepo) Get(ctx context.Context, id string) (*entity.Feed, error) {
	const query = `
SELECT id, url, name, category, last_updated
FROM feeds
WHERE id = ?
LIMIT 1
`
	var feed entity.Feed
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&feed.ID, &feed.URL, &feed.Name, &feed.Category, &feed.LastUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &feed, nil
}

func (repo *FeedRepo) GetByURL(ctx context.Context, url string) (*entity.Feed, error) {
	const query = `
SELECT id, url, name, category, last_updated
FROM feeds
WHERE url = ?
LIMIT 1
`
	var feed entity.Feed
	err := repo.db.QueryRowContext(ctx, query, url).Scan(
		&feed.ID, &feed.URL, &feed.Name, &feed.Category, &feed.LastUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetByURL: QueryRowContext: %w", err)
	}
	return &feed, nil
}

// Upsert inserts the feed or overwrites the row with the same id.
func (repo *FeedRepo) Upsert(ctx context.Context, feed *entity.Feed) error {
	const query = `
INSERT OR REPLACE INTO feeds
(id, url, name, category, last_updated)
VALUES (?, ?, ?, ?, ?)
`
	_, err := repo.db.ExecContext(ctx, query,
		feed.ID, feed.URL, feed.Name, feed.Category, feed.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("Upsert: ExecContext: %w", err)
	}
	return nil
}

// Delete removes the feed. Items and their categories go with it through
// the ON DELETE CASCADE constraints.
func (repo *FeedRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM feeds WHERE id = ?
`
	res, err := repo.db.ExecContext(ctx, query, id)

	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *FeedRepo) TouchLastUpdated(ctx context.Context, id string, ts int64) error {
	const query = `UPDATE feeds SET last_updated = ? WHERE id = ?`
	_, err := repo.db.ExecContext(ctx, query, ts, id)
	if err != nil {
		return fmt.Errorf("TouchLastUpdated: ExecContext: %w", err)
	}
	return nil
}
