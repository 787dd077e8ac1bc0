package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	localsRequestID = "reqid"
)

// Selaras dengan statement_timeout di DB.
const DefaultRequestTimeout = 5 * time.Second

func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsRequestID).(string); ok {
		return v
	}
	return ""
}

// RequestContext: Request-ID + timeout guard + log akses ringkas (zap).
func RequestContext(log *zap.Logger, timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(localsRequestID, id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.Debug("[REQ]",
			zap.String("id", id),
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)))
		return err
	}
}
