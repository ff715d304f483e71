package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, srv *http.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestProbeEndpoints(t *testing.T) {
	srv := NewServer(":0", nil)

	assert.Equal(t, http.StatusOK, get(t, srv, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(t, srv, "/readyz").Code)
}

func TestReadyzReportsProbeFailure(t *testing.T) {
	var probeErr error
	srv := NewServer(":0", func() error { return probeErr })

	assert.Equal(t, http.StatusOK, get(t, srv, "/readyz").Code)

	probeErr = errors.New("postgres: connection refused")
	rec := get(t, srv, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not ready: postgres: connection refused\n", rec.Body.String())

	probeErr = nil
	assert.Equal(t, http.StatusOK, get(t, srv, "/readyz").Code)
}

func TestMetricsEndpointExposesCollectors(t *testing.T) {
	RegistrationsTotal.WithLabelValues("module", "completed").Inc()

	rec := get(t, NewServer(":0", nil), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registry_registrations_total")
}
