// Package metrics provides Prometheus instrumentation for the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder captures metric events for the application.
type Recorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
	IncGreetingServed()
}

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	GreetingsServed prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "first_http_requests_total",
			Help: "Total HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "first_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		GreetingsServed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "first_greetings_served_total",
			Help: "Total greetings returned by GET /api/v1/greeting.",
		}),
	}
}

// ObserveHTTPRequest records one finished request.
// route is the matched route pattern, never the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncGreetingServed increments the greeting counter.
func (m *Metrics) IncGreetingServed() {
	m.GreetingsServed.Inc()
}
