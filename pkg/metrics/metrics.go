package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestsTotal counts served requests by route pattern and status
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "climate_api_requests_total",
		Help: "Total HTTP requests by route pattern and status code",
	}, []string{"route", "status"})

	// queryDuration tracks dataset query latency
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "climate_api_query_duration_seconds",
		Help:    "Dataset query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"query"})

	// queryErrors counts failed dataset queries
	queryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "climate_api_query_errors_total",
		Help: "Total failed dataset queries",
	}, []string{"query"})
)

// ObserveQuery records one dataset query. Use it with defer:
//
//	defer func(start time.Time) { metrics.ObserveQuery("stations", start, err) }(time.Now())
func ObserveQuery(query string, started time.Time, err error) {
	queryDuration.WithLabelValues(query).Observe(time.Since(started).Seconds())
	if err != nil {
		queryErrors.WithLabelValues(query).Inc()
	}
}

// Middleware counts requests once the handler chain has finished. Routes are
// labelled by pattern so path parameters do not explode cardinality.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		requestsTotal.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()

		return err
	}
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
