package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pmics_backend/internals/configs"
	databases "pmics_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, cfg configs.AppConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(cfg.Program + " backend is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := databases.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    cfg.Env,
		})
	})
}
