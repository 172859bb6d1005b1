package feeds

import (
	"log/slog"
	"net/http"

	"mcp-rss-crawler/internal/handler/http/respond"
)

// badRequest writes the API error shape with a 400 status.
func badRequest(w http.ResponseWriter, msg string) {
	respond.JSON(w, http.StatusBadRequest, ErrorResponse{Status: "error", Message: msg})
}

// serverError logs the failure and writes the API error shape with a
// generic message so internal details never reach clients.
func serverError(w http.ResponseWriter, err error) {
	slog.Error("feed request failed", slog.Any("error", respond.SanitizeError(err)))
	respond.JSON(w, http.StatusInternalServerError, ErrorResponse{
		Status:  "error",
		Message: "internal server error",
	})
}
