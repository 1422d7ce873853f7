package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/metrics"
)

// Logger logs every request with a request ID and records request metrics.
// An incoming X-Request-ID is honored so upstream proxies can correlate.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		duration := time.Since(start)
		metrics.RequestsTotal.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()
		metrics.RequestDurationMs.Observe(float64(duration.Milliseconds()))

		logger.Info("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}
