package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegistry("photostudio", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/booking-requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, path := range []string{"/api/v1/admin/booking-requests/1", "/api/v1/admin/booking-requests/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	counter := m.HTTPRequestsTotal.WithLabelValues("photostudio", http.MethodGet, "/api/v1/admin/booking-requests/{id}", "404")
	assert.Equal(t, 2.0, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsInFlight.WithLabelValues("photostudio")))
}
