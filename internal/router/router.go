// Package router assembles the HTTP route table and middleware chain.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chanthorn/first/internal/handler"
	"github.com/chanthorn/first/internal/metrics"
	"github.com/chanthorn/first/internal/middleware"
	"github.com/chanthorn/first/internal/service"
)

// Config carries everything the route table depends on.
type Config struct {
	AppName            string
	HSTS               bool
	CORSAllowedOrigins []string
	MaxRequestBodySize int64

	Logger    *slog.Logger
	Greeter   service.Greeter
	Readiness handler.ReadinessProbe

	// Recorder receives request and greeting metrics. Nil discards them.
	Recorder metrics.Recorder
	// Gatherer backs GET /metrics. Nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

// New configures the chi router with all routes and middleware.
func New(cfg Config) *chi.Mux {
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	h := handler.New(cfg.AppName)
	healthHandler := handler.NewHealthHandler(cfg.Readiness)
	greetingHandler := handler.NewGreetingHandler(cfg.Greeter, recorder, cfg.Logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	// Metrics wraps Recoverer so recovered panics are counted as 500s.
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(middleware.Security(middleware.SecurityConfig{HSTS: cfg.HSTS}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.CORS(corsCfg))
	r.Use(chimiddleware.GetHead)

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", handler.NewMetricsHandler(cfg.Gatherer, cfg.Logger))
	}

	// Root info endpoint
	r.Get("/", h.Info)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/greeting", greetingHandler.Greeting)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
