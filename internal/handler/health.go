package handler

import (
	"net/http"
)

// ReadinessProbe reports whether the process should receive traffic.
type ReadinessProbe interface {
	Ready() bool
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	probe ReadinessProbe
}

// NewHealthHandler creates a new HealthHandler.
// A nil probe means the service is always ready.
func NewHealthHandler(probe ReadinessProbe) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz is a liveness probe endpoint. It returns 200 while the process runs.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint.
// It returns 503 once graceful shutdown has begun so load balancers stop
// routing new requests here while in-flight ones drain.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.probe != nil && !h.probe.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "draining"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
