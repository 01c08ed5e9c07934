package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pKa1/loveSonia/internal/realtime"
	"github.com/pKa1/loveSonia/pkg/log"
)

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	cfg.Mode = gin.TestMode
	cfg.Port = 8080
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return srv
}

func TestNew_Validate(t *testing.T) {
	_, err := New(nil, Config{Mode: gin.TestMode, Port: 8080})
	assert.EqualError(t, err, "logger is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "lovesonia_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	hub := realtime.NewHub(log.NewNop(), 0)
	srv := newTestServer(t, Config{
		Environment:     "development",
		Gatherer:        reg,
		RealtimeHandler: realtime.NewHandler(hub, 0),
	})

	for _, path := range []string{"/health", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var ready struct {
		Data struct {
			Components map[string]bool `json:"components"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ready))
	assert.Equal(t, map[string]bool{"intents": false, "telegram": false, "realtime": true}, ready.Data.Components)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lovesonia_test_total 1")
}

func TestDomainRoutes_SkippedWhenNotConfigured(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/webhook/telegram"},
		{http.MethodPost, "/api/v1/intents/parse"},
		{http.MethodGet, "/api/v1/realtime"},
	} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
	}
}
