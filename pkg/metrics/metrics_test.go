package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery_CountsErrors(t *testing.T) {
	before := testutil.ToFloat64(queryErrors.WithLabelValues("metrics-test"))

	ObserveQuery("metrics-test", time.Now(), nil)
	ObserveQuery("metrics-test", time.Now(), errors.New("database is locked"))

	after := testutil.ToFloat64(queryErrors.WithLabelValues("metrics-test"))
	assert.Equal(t, before+1, after)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/api/v1.0/:start", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("start"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.ErrInternalServerError
	})
	app.Get("/metrics", Handler())

	counter := requestsTotal.WithLabelValues("/api/v1.0/:start", "200")
	before := testutil.ToFloat64(counter)

	for _, date := range []string{"2017-01-01", "2017-08-23"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1.0/"+date, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.GreaterOrEqual(t, testutil.ToFloat64(requestsTotal.WithLabelValues("/boom", "500")), 1.0)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "climate_api_requests_total")
}
