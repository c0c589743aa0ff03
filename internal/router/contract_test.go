package router

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/prometheus/client_golang/prometheus"
)

var docPath = filepath.Join("..", "..", "api", "openapi.yaml")

// loadDocument loads and validates the OpenAPI document.
func loadDocument(t *testing.T) (*openapi3.T, routers.Router) {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(docPath)
	if err != nil {
		t.Fatalf("failed to load OpenAPI document from %s: %v", docPath, err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("OpenAPI document validation failed: %v", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		t.Fatalf("failed to create router from document: %v", err)
	}

	return doc, router
}

func TestContract_DocumentedPaths(t *testing.T) {
	doc, _ := loadDocument(t)

	for _, path := range []string{"/", "/api/v1/greeting", "/healthz", "/readyz", "/metrics"} {
		if doc.Paths.Find(path) == nil {
			t.Errorf("expected path %s in document", path)
		}
	}
}

func TestContract_ResponsesMatchDocument(t *testing.T) {
	_, docRouter := loadDocument(t)
	r := newTestRouter(t, prometheus.NewRegistry())

	for _, path := range []string{"/", "/api/v1/greeting", "/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			route, pathParams, err := docRouter.FindRoute(req)
			if err != nil {
				t.Fatalf("could not find route in document: %v", err)
			}

			requestInput := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(context.Background(), requestInput); err != nil {
				t.Fatalf("request validation failed: %v", err)
			}

			responseInput := &openapi3filter.ResponseValidationInput{
				RequestValidationInput: requestInput,
				Status:                 rec.Code,
				Header:                 rec.Header(),
				Body:                   io.NopCloser(bytes.NewReader(rec.Body.Bytes())),
			}
			if err := openapi3filter.ValidateResponse(context.Background(), responseInput); err != nil {
				t.Errorf("response validation failed: %v", err)
			}
		})
	}
}
