// ABOUTME: HTTP access logging middleware with timing and request context
package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"definex/utils/logger"
)

// LoggingMiddleware logs one access line per request. Health probes are
// skipped to keep the logs readable under frequent polling.
func LoggingMiddleware(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if strings.HasSuffix(req.URL.Path, "/health") {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			res := c.Response()
			logger.WithContext(req.Context(), log).Info("request completed",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"response_size", res.Size,
				"ip_address", c.RealIP(),
				"duration_ms", duration.Milliseconds(),
			)

			return err
		}
	}
}
