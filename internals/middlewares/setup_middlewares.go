package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/middlewares/logger"
)

// SetupMiddlewares: urutan penting, recover paling luar.
func SetupMiddlewares(app *fiber.App, cfg configs.AppConfig, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(log, DefaultRequestTimeout))
	app.Use(logger.LoggerMiddleware(cfg.Timezone))
	app.Use(CorsMiddleware(cfg.AllowedOrigins))
	app.Use(GlobalRateLimiter())
}
