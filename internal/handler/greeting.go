package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chanthorn/first/internal/lib/logger/sl"
	"github.com/chanthorn/first/internal/metrics"
	"github.com/chanthorn/first/internal/service"
)

// GreetingHandler serves the greeting endpoint.
type GreetingHandler struct {
	greeter service.Greeter
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewGreetingHandler creates a new GreetingHandler.
func NewGreetingHandler(greeter service.Greeter, recorder metrics.Recorder, logger *slog.Logger) *GreetingHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &GreetingHandler{
		greeter: greeter,
		metrics: recorder,
		logger:  logger,
	}
}

// Greeting returns the greeting as plain text.
// GET /api/v1/greeting
func (h *GreetingHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	msg, err := h.greeter.Greeting(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build greeting", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	h.metrics.IncGreetingServed()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(msg)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write greeting", sl.Err(err))
	}
}
