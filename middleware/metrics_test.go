package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	requestsTotal.Reset()
	requestDuration.Reset()

	router := mux.NewRouter()
	router.Use(MetricsMiddleware)
	router.HandleFunc("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	for _, id := range []string{"652f1a2b3c4d5e6f70818283", "652f1a2b3c4d5e6f70818284"} {
		req := httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	// both requests land on one template label, not one series per id
	got := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/api/products/{id}", "200"))
	assert.Equal(t, 2.0, got)
}

func TestRoutePathFallsBackToRawPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	assert.Equal(t, "/healthz", routePath(req))
}
