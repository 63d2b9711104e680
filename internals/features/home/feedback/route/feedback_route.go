package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	feedbackCtrl "campushub_backend/internals/features/home/feedback/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func FeedbackRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feedbackCtrl.NewFeedbackController(db)

	// =====================
	// Feedback
	// =====================
	group := r.Group("/feedback")

	// Any authenticated user can leave feedback.
	group.Post("/", ctrl.Create)

	admin := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorManagement("feedback"), constants.ManagementRoles...),
	)
	admin.Get("/", ctrl.List)
	admin.Delete("/:id", ctrl.Delete)
}
