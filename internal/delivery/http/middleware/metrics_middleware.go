package middleware

import (
	"strconv"
	"time"

	"wardrobe/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics observes the latency of every request, labelled by route template
// so path parameters do not explode the series count. Errors are rendered
// here so the recorded status is the one the client receives.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Observe(time.Since(start).Seconds())

		return nil
	}
}
