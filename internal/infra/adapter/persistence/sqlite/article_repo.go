package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) GetByURL(ctx context.Context, url string) (*entity.Article, error) {
	const query = `
SELECT id, url, title, content, html, author, published_date, image_url, summary, fetched_at
FROM articles
WHERE url = ?
LIMIT 1
`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, url).Scan(
		&article.ID, &article.URL, &article.Title, &article.Content,
		&article.HTML, &article.Author, &article.PublishedDate,
		&article.ImageURL, &article.Summary, &article.FetchedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetByURL: QueryRowContext: %w", err)
	}
	return &article, nil
}

// Save inserts the article or overwrites the cached row for the same URL.
func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT OR REPLACE INTO articles
(id, url, title, content, html, author, published_date, image_url, summary, fetched_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.URL, article.Title, article.Content,
		article.HTML, article.Author, article.PublishedDate,
		article.ImageURL, article.Summary, article.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("Save: ExecContext: %w", err)
	}
	return nil
}

// List retrieves cached articles, most recently fetched first.
func (repo *ArticleRepo) List(ctx context.Context, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, url, title, content, html, author, published_date, image_url, summary, fetched_at
FROM articles
ORDER BY fetched_at DESC
LIMIT ?
`

	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(&article.ID, &article.URL, &article.Title,
			&article.Content, &article.HTML, &article.Author,
			&article.PublishedDate, &article.ImageURL,
			&article.Summary, &article.FetchedAt)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return articles, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, url, title, content, html, author, published_date, image_url, summary, fetched_at
FROM articles
WHERE title  LIKE ?
OR summary   LIKE ?
OR content   LIKE ?
ORDER BY fetched_at DESC
LIMIT ?
`
	param := "%" + keyword + "%"
	rows, err := repo.db.QueryContext(ctx, query, param, param, param, limit)
	if err != nil {
		return nil, fmt.Errorf("Search: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(&article.ID, &article.URL, &article.Title,
			&article.Content, &article.HTML, &article.Author,
			&article.PublishedDate, &article.ImageURL,
			&article.Summary, &article.FetchedAt)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Search: rows.Err: %w", err)
	}

	return articles, nil
}
