package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithMetrics(t *testing.T, m *HTTPMetrics, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/app", func(c echo.Context) error { return c.String(http.StatusOK, "EvalRAG") })
	e.GET("/metrics", func(c echo.Context) error { return c.String(http.StatusOK, "") })
	e.GET("/health/live", func(c echo.Context) error { return c.String(http.StatusOK, "") })

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	rec := serveWithMetrics(t, m, http.MethodGet, "/app")
	require.Equal(t, http.StatusOK, rec.Code)

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/app", "200"))
	assert.Equal(t, float64(1), count)
}

func TestMiddleware_SkipsMetricsAndHealth(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	serveWithMetrics(t, m, http.MethodGet, "/metrics")
	serveWithMetrics(t, m, http.MethodGet, "/health/live")

	assert.Equal(t, 0, testutil.CollectAndCount(m.RequestsTotal))
}

func TestMiddleware_InFlightReturnsToZero(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	serveWithMetrics(t, m, http.MethodGet, "/")

	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlightGauge))
}

func TestNewRegistry_HasRuntimeCollectors(t *testing.T) {
	reg := NewRegistry()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
