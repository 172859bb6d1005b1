package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// ItemRepo implements the ItemRepository interface using SQLite.
type ItemRepo struct{ db *sql.DB }

// NewItemRepo creates a new SQLite-backed item repository.
func NewItemRepo(db *sql.DB) repository.ItemRepository {
	return &ItemRepo{db: db}
}

// UpsertBatch writes all items of one feed fetch in a single transaction.
// Item rows are replaced wholesale; categories are rewritten per item so
// a category removed upstream does not linger.
func (repo *ItemRepo) UpsertBatch(ctx context.Context, feedID string, items []*entity.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("UpsertBatch: BeginTx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertItem = `
INSERT OR REPLACE INTO items
(id, feed_id, title, link, summary, content, published, updated, author)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`
	const deleteCategories = `DELETE FROM categories WHERE item_id = ?`
	// position preserves the document order of the categories.
	const insertCategory = `INSERT INTO categories (item_id, position, category) VALUES (?, ?, ?)`

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, insertItem,
			item.ID, feedID, item.Title, item.Link,
			item.Summary, item.Content, item.Published, item.Updated, item.Author,
		); err != nil {
			return fmt.Errorf("UpsertBatch: insert item: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteCategories, item.ID); err != nil {
			return fmt.Errorf("UpsertBatch: delete categories: %w", err)
		}
		for pos, cat := range item.Categories {
			if _, err := tx.ExecContext(ctx, insertCategory, item.ID, pos, cat); err != nil {
				return fmt.Errorf("UpsertBatch: insert category: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("UpsertBatch: Commit: %w", err)
	}
	return nil
}

// Query retrieves items joined with their feed, newest first. Category and
// keyword filters are optional and composed dynamically.
func (repo *ItemRepo) Query(ctx context.Context, q repository.ItemQuery) ([]repository.ItemWithFeed, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(
		"i.id", "i.feed_id", "i.title", "i.link", "i.summary", "i.content",
		"i.published", "i.updated", "i.author", "f.name", "f.url",
	)
	sb.From("items i")
	sb.Join("feeds f", "i.feed_id = f.id")
	if q.Category != "" {
		sb.Where(sb.Equal("f.category", q.Category))
	}
	if q.Keyword != "" {
		pattern := "%" + q.Keyword + "%"
		sb.Where(sb.Or(sb.Like("i.title", pattern), sb.Like("i.summary", pattern)))
	}
	sb.OrderBy("i.published").Desc()
	if q.Limit > 0 {
		sb.Limit(q.Limit)
	}

	query, args := sb.Build()
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Query: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	result := make([]repository.ItemWithFeed, 0, 100)
	for rows.Next() {
		var item entity.Item
		var feedTitle, feedURL string
		err := rows.Scan(&item.ID, &item.FeedID, &item.Title, &item.Link,
			&item.Summary, &item.Content, &item.Published, &item.Updated,
			&item.Author, &feedTitle, &feedURL)
		if err != nil {
			return nil, fmt.Errorf("Query: Scan: %w", err)
		}
		result = append(result, repository.ItemWithFeed{
			Item:      &item,
			FeedTitle: feedTitle,
			FeedURL:   feedURL,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Query: rows.Err: %w", err)
	}

	if err := repo.attachCategories(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachCategories loads the categories of the returned items in one batch
// query to avoid N+1 lookups.
func (repo *ItemRepo) attachCategories(ctx context.Context, items []repository.ItemWithFeed) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(items))
	index := make(map[string]*entity.Item, len(items))
	for _, it := range items {
		ids = append(ids, it.Item.ID)
		index[it.Item.ID] = it.Item
	}

	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("item_id", "category")
	sb.From("categories")
	sb.Where(sb.In("item_id", ids...))
	// position restores the document order the normalizer recorded.
	sb.OrderBy("item_id", "position")

	query, args := sb.Build()
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("attachCategories: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var itemID, category string
		if err := rows.Scan(&itemID, &category); err != nil {
			return fmt.Errorf("attachCategories: Scan: %w", err)
		}
		if item, ok := index[itemID]; ok {
			item.Categories = append(item.Categories, category)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("attachCategories: rows.Err: %w", err)
	}
	return nil
}
