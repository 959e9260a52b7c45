package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"climate-api/pkg/logger"
	"climate-api/pkg/metrics"
)

// ReadinessProbe reports whether the app can serve traffic.
type ReadinessProbe func(c *fiber.Ctx) bool

func InitFiberServer(appName string, l *logger.Logger, ready ReadinessProbe) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               appName,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(cors.New())
	s.Use(requestLogger(l))
	s.Use(metrics.Middleware())

	probe := healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}
	if ready != nil {
		probe.ReadinessProbe = healthcheck.HealthChecker(ready)
	}
	s.Use(healthcheck.New(probe))

	s.Get("/metrics", metrics.Handler())

	return s
}

func requestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		l.Debug("request served", map[string]any{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
		})

		return err
	}
}
