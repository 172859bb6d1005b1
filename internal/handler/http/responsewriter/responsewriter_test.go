package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

/* ───────── ResponseWriter テスト ───────── */

func TestWrap_DefaultsTo200(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	if w.StatusCode() != http.StatusOK {
		t.Errorf("expected default status 200, got %d", w.StatusCode())
	}
	if w.BytesWritten() != 0 {
		t.Errorf("expected 0 bytes written, got %d", w.BytesWritten())
	}
}

func TestWriteHeader_RecordsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("expected recorded status 404, got %d", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected underlying status 404, got %d", rec.Code)
	}
}

func TestWriteHeader_IgnoresDuplicateCalls(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusBadRequest)
	w.WriteHeader(http.StatusInternalServerError)

	if w.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected first status 400 to win, got %d", w.StatusCode())
	}
}

func TestWrite_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	_, _ = w.Write([]byte("hello "))
	_, _ = w.Write([]byte("world"))

	if w.BytesWritten() != 11 {
		t.Errorf("expected 11 bytes written, got %d", w.BytesWritten())
	}
	if rec.Body.String() != "hello world" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestWrite_ImplicitHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	_, _ = w.Write([]byte("body"))

	if w.StatusCode() != http.StatusOK {
		t.Errorf("expected implicit 200, got %d", w.StatusCode())
	}
}

func TestUnwrap_ReturnsUnderlying(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	if w.Unwrap() != rec {
		t.Error("expected Unwrap to return the wrapped writer")
	}
}
