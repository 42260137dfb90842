package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get(MetricsPath, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/cvs/:id", func(c *fiber.Ctx) error {
		assert.Equal(t, float64(1), testutil.ToFloat64(m.inFlight))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/cvs/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Post("/cvs", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad request") })
	app.Patch("/cvs/:id", func(c *fiber.Ctx) error { return assert.AnError })
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	tests := []struct {
		method  string
		target  string
		pattern string
		status  string
	}{
		{method: "GET", target: "/cvs/123", pattern: "/cvs/:id", status: "200"},
		{method: "DELETE", target: "/cvs/456", pattern: "/cvs/:id", status: "204"},
		{method: "POST", target: "/cvs", pattern: "/cvs", status: "400"},
		{method: "PATCH", target: "/cvs/789", pattern: "/cvs/:id", status: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			app, m, _ := newMetricsApp(t)

			_, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)

			assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues(tt.method, tt.pattern, tt.status)))
			assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
			assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
		})
	}
}

func TestPrometheusMiddleware_ExcludesMetricsEndpoint(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	_, err := app.Test(httptest.NewRequest("GET", MetricsPath, nil))
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.CollectAndCount(m.requestCount))
	assert.Equal(t, 0, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
