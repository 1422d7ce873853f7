package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/config"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/metrics"
	"github.com/Gorskiz/historic-places-canada-2/internal/ratelimit"
)

const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// rateLimitBody is the 429 payload. The message reiterates the usage-policy
// scope of the underlying dataset.
type rateLimitBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"`
}

// RateLimit enforces the two-tier throttle in front of every API route.
// The global tier applies to all requests; the data tier applies
// additionally to the bulk-data endpoints (list, search, map). Evaluation
// order matters: the global check runs first, and either denial
// short-circuits before any query composition.
//
// If the limiter itself fails, the request is allowed and the fault logged.
// Throttling must never be a single point of total failure.
func RateLimit(limiter ratelimit.Limiter, cfg config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	global := ratelimit.Tier{Prefix: "ip:", Limit: cfg.GlobalPerWindow, Window: cfg.Window}
	data := ratelimit.Tier{Prefix: "data:ip:", Limit: cfg.DataPerWindow, Window: cfg.Window}

	return func(c *fiber.Ctx) error {
		// Preflight carries only CORS metadata and is never throttled.
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		isData := isDataEndpoint(c.Path())
		activeLimit := global.Limit
		if isData {
			activeLimit = data.Limit
		}

		identifier := c.IP()

		if denied := check(c, limiter, global, identifier, "global", logger); denied != nil {
			return denied(c)
		}
		if isData {
			if denied := check(c, limiter, data, identifier, "data", logger); denied != nil {
				return denied(c)
			}
		}

		err := c.Next()

		// The remaining count is an estimate; the authoritative counters
		// live in the limiter store and are not read back per request.
		setRateHeaders(c, activeLimit, activeLimit-1, cfg.Window)

		return err
	}
}

// check runs one tier. It returns nil when the request may proceed and a
// deny responder otherwise.
func check(c *fiber.Ctx, limiter ratelimit.Limiter, tier ratelimit.Tier, identifier, tierName string, logger *zap.Logger) func(*fiber.Ctx) error {
	allowed, err := limiter.Allow(c.Context(), tier.Key(identifier), tier.Limit, tier.Window)
	if err != nil {
		// Fail open: availability over strictness.
		metrics.LimiterErrorsTotal.Inc()
		logger.Warn("Rate limit check failed, allowing request",
			zap.String("tier", tierName),
			zap.Error(err),
		)
		return nil
	}
	if allowed {
		return nil
	}

	metrics.RateLimitedTotal.WithLabelValues(tierName).Inc()
	limit := tier.Limit
	window := tier.Window
	return func(c *fiber.Ctx) error {
		setRateHeaders(c, limit, 0, window)
		c.Set(HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
		return c.Status(fiber.StatusTooManyRequests).JSON(rateLimitBody{
			Error:      "Rate limit exceeded",
			Message:    "Too many requests. This API is restricted to non-commercial, educational use only. Please try again later.",
			RetryAfter: int(window.Seconds()),
		})
	}
}

func setRateHeaders(c *fiber.Ctx, limit, remaining int, window time.Duration) {
	reset := time.Now().Add(window).Unix()
	c.Set(HeaderLimit, strconv.Itoa(limit))
	c.Set(HeaderRemaining, strconv.Itoa(remaining))
	c.Set(HeaderReset, strconv.FormatInt(reset, 10))
}

// isDataEndpoint classifies the bulk-data routes subject to the tighter
// tier. The single-record route /api/places/:id is deliberately not one.
func isDataEndpoint(path string) bool {
	switch path {
	case "/api/places", "/api/search", "/api/map":
		return true
	}
	return false
}
