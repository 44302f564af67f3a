package handlers

import (
	"log/slog"
	"net/http"

	"github.com/MatBureau/devops-portfolio/internal/visitlog"
)

// LogsHandler returns the last n visit log lines as plain text.
func LogsHandler(j *visitlog.Journal, n int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tail, err := j.Tail(n)
		if err != nil {
			slog.Warn("reading visit log", "path", j.Path(), "err", err)
			tail = visitlog.NoLogs
		}
		writeText(w, http.StatusOK, tail)
	}
}
