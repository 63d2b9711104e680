package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assistantRoute "campushub_backend/internals/features/assistant/route"
	feedbackRoute "campushub_backend/internals/features/home/feedback/route"
	notificationRoute "campushub_backend/internals/features/home/notifications/route"
)

func HomeRoutes(r fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationRoutes(r, db)
	feedbackRoute.FeedbackRoutes(r, db)
	assistantRoute.AssistantRoutes(r)
}
