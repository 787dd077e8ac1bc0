package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "pmics_backend/internals/helpers"
)

func limitReached(msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
	}
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: limitReached("❌ Too many requests. Please try again later."),
	})
}

// Rate limiter untuk export (render PDF/Excel lebih berat)
func ExportRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "export:" + c.IP()
		},
		LimitReached: limitReached("❌ Too many export requests. Please wait a minute."),
	})
}

// Rate limiter untuk perubahan jadwal (PATCH)
func MutationRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "mutate:" + c.IP()
		},
		LimitReached: limitReached("❌ Too many changes in a short time. Please slow down."),
	})
}
