package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "campushub_backend/internals/route/details"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// Payment gateway webhook: no token, registered before the
	// authenticated /api group so it wins over /api/fees/:id.
	log.Println("[INFO] Setting up webhook routes...")
	public := app.Group("/api")
	routeDetails.FinanceWebhookRoutes(public, db)

	// ===================== AUTHENTICATED =====================
	log.Println("[INFO] Setting up authenticated /api group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] Mounting academics routes...")
	routeDetails.AcademicsRoutes(api, db)

	log.Println("[INFO] Mounting finance routes...")
	routeDetails.FinanceRoutes(api, db)

	log.Println("[INFO] Mounting home routes...")
	routeDetails.HomeRoutes(api, db)
}
