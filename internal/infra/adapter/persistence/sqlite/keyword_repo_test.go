package sqlite_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"mcp-rss-crawler/internal/domain/entity"
	"mcp-rss-crawler/internal/infra/adapter/persistence/sqlite"
)

func keywordRow(kw *entity.Keyword) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "keyword", "created_at"}).
		AddRow(kw.ID, kw.Keyword, kw.CreatedAt)
}

func TestKeywordRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Keyword{ID: "a4c96c8e", Keyword: "golang", CreatedAt: 1748736000}

	mock.ExpectQuery("SELECT").WillReturnRows(keywordRow(want))

	repo := sqlite.NewKeywordRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordRepo_GetByKeyword(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Keyword{ID: "a4c96c8e", Keyword: "golang", CreatedAt: 1748736000}

	mock.ExpectQuery("SELECT").
		WithArgs("golang").
		WillReturnRows(keywordRow(want))

	repo := sqlite.NewKeywordRepo(db)
	got, err := repo.GetByKeyword(context.Background(), "golang")
	if err != nil {
		t.Fatalf("GetByKeyword err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetByKeyword mismatch (-want +got):\n%s", diff)
	}
}

// 未登録キーワードは (nil, nil)
func TestKeywordRepo_GetByKeyword_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT").
		WithArgs("rust").
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "created_at"}))

	repo := sqlite.NewKeywordRepo(db)
	got, err := repo.GetByKeyword(context.Background(), "rust")
	if err != nil {
		t.Fatalf("GetByKeyword err=%v", err)
	}
	if got != nil {
		t.Fatalf("GetByKeyword want nil, got %+v", got)
	}
}

func TestKeywordRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	kw := &entity.Keyword{ID: "a4c96c8e", Keyword: "golang", CreatedAt: 1748736000}

	mock.ExpectExec("INSERT INTO keywords").
		WithArgs(kw.ID, kw.Keyword, kw.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := sqlite.NewKeywordRepo(db)
	if err := repo.Create(context.Background(), kw); err != nil {
		t.Fatalf("Create err=%v", err)
	}
}

func TestKeywordRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM keywords").
		WithArgs("a4c96c8e").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := sqlite.NewKeywordRepo(db)
	if err := repo.Delete(context.Background(), "a4c96c8e"); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestKeywordRepo_Delete_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM keywords").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := sqlite.NewKeywordRepo(db)
	if err := repo.Delete(context.Background(), "missing"); err == nil {
		t.Fatal("Delete want error for missing row")
	}
}
