package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorResp struct {
	Error string `json:"error"`
	Data  any    `json:"data"`
}

// writeJSON writes v with 200, or a 500 carrying err and whatever partial v
// the caller has.
func writeJSON(w http.ResponseWriter, v any, err error) {
	code, body := http.StatusOK, v
	if err != nil {
		code, body = http.StatusInternalServerError, errorResp{Error: err.Error(), Data: v}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		slog.Warn("writing json response", "err", encErr)
	}
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
