package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{"generated when absent", "", false},
		{"client value reused", "abc-123", true},
		{"whitespace rejected", "abc 123", false},
		{"oversized rejected", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got != seen {
				t.Errorf("header %q does not match context value %q", got, seen)
			}

			if tt.wantReuse {
				if got != tt.header {
					t.Errorf("request id = %q, want %q", got, tt.header)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("expected generated UUID, got %q", got)
			}
		})
	}
}

func TestRequestID_TraceIDPropagated(t *testing.T) {
	t.Parallel()

	var traceID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if traceID != "trace-1" {
		t.Errorf("trace id in context = %q, want trace-1", traceID)
	}
	if got := rec.Header().Get(TraceIDHeader); got != "trace-1" {
		t.Errorf("trace id header = %q, want trace-1", got)
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
	if got := GetTraceID(req.Context()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}
