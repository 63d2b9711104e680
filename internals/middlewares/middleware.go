package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "campushub_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the baseline middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
