// Package middleware provides HTTP middleware components.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody mirrors the JSON error envelope written by the handler package.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: message, Code: code}); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}
