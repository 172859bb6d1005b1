package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using PostgreSQL.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new PostgreSQL-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) GetByURL(ctx context.Context, url string) (*entity.Article, error) {
	const query = `
SELECT id, url, title, content, html, author, published_date, image_url, summary, fetched_at
FROM articles
WHERE url = $1
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
INSERT INTO articles
(id, url, title, content, html, author, published_date, image_url, summary, fetched_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (url) DO UPDATE SET
	id             = EXCLUDED.id,
	title          = EXCLUDED.title,
	content        = EXCLUDED.content,
	html           = EXCLUDED.html,
	author         = EXCLUDED.author,
	published_date = EXCLUDED.published_date,
	image_url      = EXCLUDED.image_url,
	summary        = EXCLUDED.summary,
	fetched_at     = EXCLUDED.fetched_at
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
LIMIT $1
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

// Search matches a keyword against title, summary and content.
// Note: PostgreSQL uses ILIKE for case-insensitive matching.
func (repo *ArticleRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, url, title, content, html, author, published_date, image_url, summary, fetched_at
FROM articles
WHERE title  ILIKE $1
OR summary   ILIKE $1
OR content   ILIKE $1
ORDER BY fetched_at DESC
LIMIT $2
`
	param := "%" + keyword + "%"
	rows, err := repo.db.QueryContext(ctx, query, param, limit)
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
