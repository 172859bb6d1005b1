package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/repository"
)

// KeywordRepo implements the KeywordRepository interface using PostgreSQL.
type KeywordRepo struct{ db *sql.DB }

// NewKeywordRepo creates a new PostgreSQL-backed keyword repository.
func NewKeywordRepo(db *sql.DB) repository.KeywordRepository {
	return &KeywordRepo{db: db}
}

// List retrieves all interest keywords, oldest first.
func (repo *KeywordRepo) List(ctx context.Context) ([]*entity.Keyword, error) {
	const query = `
SELECT id, keyword, created_at
FROM keywords
ORDER BY created_at
`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	keywords := make([]*entity.Keyword, 0, 16)
	for rows.Next() {
		var kw entity.Keyword
		if err := rows.Scan(&kw.ID, &kw.Keyword, &kw.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		keywords = append(keywords, &kw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return keywords, nil
}

func (repo *KeywordRepo) GetByKeyword(ctx context.Context, keyword string) (*entity.Keyword, error) {
	const query = `
SELECT id, keyword, created_at
FROM keywords
WHERE keyword = $1
LIMIT 1
`
	var kw entity.Keyword
	err := repo.db.QueryRowContext(ctx, query, keyword).Scan(&kw.ID, &kw.Keyword, &kw.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetByKeyword: QueryRowContext: %w", err)
	}
	return &kw, nil
}

func (repo *KeywordRepo) Create(ctx context.Context, kw *entity.Keyword) error {
	const query = `
INSERT INTO keywords (id, keyword, created_at)
VALUES ($1, $2, $3)
`
	_, err := repo.db.ExecContext(ctx, query, kw.ID, kw.Keyword, kw.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *KeywordRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM keywords WHERE id = $1
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
