package middleware

import (
	"strconv"
	"time"

	"github.com/deppfellow/geotemp/internal/metrics"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency in Prometheus.
type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Record labels by route pattern rather than raw path so ids do not
// explode label cardinality.
func (m *MetricsMiddleware) Record() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, strconv.Itoa(statusFromError(c, err))).
				Inc()
			metrics.HTTPRequestDuration.
				WithLabelValues(method, route).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
