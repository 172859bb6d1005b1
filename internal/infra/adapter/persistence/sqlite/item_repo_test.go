package sqlite_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/infra/adapter/persistence/sqlite"
	"mcp-rss-crawler/internal/repository"
)

func itemRows(items ...*entity.Item) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "feed_id", "title", "link", "summary", "content",
		"published", "updated", "author", "name", "url",
	})
	for _, it := range items {
		rows.AddRow(it.ID, it.FeedID, it.Title, it.Link, it.Summary, it.Content,
			it.Published, it.Updated, it.Author, "Example", "https://example.com/feed")
	}
	return rows
}

// ─────────────────────────────────────────────
// 1. Query 基本形(フィード結合 + 降順 + LIMIT)
// ─────────────────────────────────────────────
func TestItemRepo_Query(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	item := &entity.Item{ID: "https://example.com/a1", FeedID: "feed/abc",
		Title: "First", Link: "https://example.com/a1.html",
		Summary: "s", Content: "c", Published: 100, Updated: 100, Author: "alice"}

	mock.ExpectQuery("SELECT (.+) FROM items").
		WillReturnRows(itemRows(item))
	// カテゴリは登場順(position)で読み戻す
	mock.ExpectQuery("SELECT (.+) FROM categories (.+) ORDER BY item_id, position").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "category"}).
			AddRow(item.ID, "Tech").
			AddRow(item.ID, "News"))

	repo := sqlite.NewItemRepo(db)
	got, err := repo.Query(context.Background(), repository.ItemQuery{Limit: 10})
	if err != nil {
		t.Fatalf("Query err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Query len=%d", len(got))
	}
	if got[0].FeedTitle != "Example" || got[0].FeedURL != "https://example.com/feed" {
		t.Fatalf("Query feed fields=%q %q", got[0].FeedTitle, got[0].FeedURL)
	}
	want := []string{"Tech", "News"}
	if len(got[0].Item.Categories) != 2 ||
		got[0].Item.Categories[0] != want[0] || got[0].Item.Categories[1] != want[1] {
		t.Fatalf("Query categories=%v, want %v", got[0].Item.Categories, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 2. Query キーワード絞り込み(title/summaryのLIKE)
// ─────────────────────────────────────────────
func TestItemRepo_Query_Keyword(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("LIKE").
		WithArgs("%golang%", "%golang%").
		WillReturnRows(itemRows())

	repo := sqlite.NewItemRepo(db)
	got, err := repo.Query(context.Background(), repository.ItemQuery{Keyword: "golang"})
	if err != nil {
		t.Fatalf("Query err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Query len=%d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 3. Query カテゴリ絞り込み
// ─────────────────────────────────────────────
func TestItemRepo_Query_Category(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("category").
		WithArgs("Tech").
		WillReturnRows(itemRows())

	repo := sqlite.NewItemRepo(db)
	if _, err := repo.Query(context.Background(), repository.ItemQuery{Category: "Tech"}); err != nil {
		t.Fatalf("Query err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 4. UpsertBatch(トランザクション + カテゴリ書き換え)
// ─────────────────────────────────────────────
func TestItemRepo_UpsertBatch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	item := &entity.Item{ID: "https://example.com/a1", Title: "First",
		Link: "https://example.com/a1.html", Summary: "s", Content: "c",
		Published: 100, Updated: 100, Author: "alice", Categories: []string{"Tech", "News"}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT OR REPLACE INTO items").
		WithArgs(item.ID, "feed/abc", item.Title, item.Link,
			item.Summary, item.Content, item.Published, item.Updated, item.Author).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(item.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// カテゴリは登場順にpositionを振って保存する
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(item.ID, 0, "Tech").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(item.ID, 1, "News").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := sqlite.NewItemRepo(db)
	err := repo.UpsertBatch(context.Background(), "feed/abc", []*entity.Item{item})
	if err != nil {
		t.Fatalf("UpsertBatch err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 5. UpsertBatch 空入力は何もしない
// ─────────────────────────────────────────────
func TestItemRepo_UpsertBatch_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := sqlite.NewItemRepo(db)
	if err := repo.UpsertBatch(context.Background(), "feed/abc", nil); err != nil {
		t.Fatalf("UpsertBatch err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 6. UpsertBatch 失敗時はロールバック
// ─────────────────────────────────────────────
func TestItemRepo_UpsertBatch_RollbackOnError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	item := &entity.Item{ID: "x", Title: "t"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT OR REPLACE INTO items").
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	repo := sqlite.NewItemRepo(db)
	err := repo.UpsertBatch(context.Background(), "feed/abc", []*entity.Item{item})
	if err == nil {
		t.Fatal("UpsertBatch want error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
