// Package respond writes JSON HTTP responses. Error responses go through
// a sanitizing layer so connection strings and credentials embedded in
// feed URLs never reach the client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ヘッダー送信済みのためエラーレスポンスは返せない
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Message fragments that indicate a user-caused error. Anything else is
// treated as internal and replaced with a generic message.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
}

// SafeError writes an error response without leaking internals.
// Validation-style errors pass through as-is; everything else is logged
// (sanitized) and replaced with "internal server error". A 5xx code always
// counts as internal regardless of the message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	safe := false
	if code < 500 {
		lower := strings.ToLower(msg)
		for _, fragment := range safeFragments {
			if strings.Contains(lower, fragment) {
				safe = true
				break
			}
		}
	}

	if !safe {
		// 機密情報をマスクしてログ出力
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
		msg = "internal server error"
	}
	JSON(w, code, map[string]string{"error": msg})
}
