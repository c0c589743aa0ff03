package server

import "sync/atomic"

// Readiness tracks whether the server should receive new traffic.
// The zero value reports not ready.
type Readiness struct {
	ready atomic.Bool
}

// NewReadiness returns a Readiness that reports not ready until the server starts.
func NewReadiness() *Readiness {
	return &Readiness{}
}

// Ready reports whether the server is accepting traffic and not draining.
func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

func (r *Readiness) set(v bool) {
	r.ready.Store(v)
}
