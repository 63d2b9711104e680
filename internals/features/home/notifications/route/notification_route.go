package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	notifCtrl "campushub_backend/internals/features/home/notifications/controller"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtrl.NewNotificationController(db)

	// =====================
	// Notifications
	// =====================
	group := r.Group("/notifications")

	group.Get("/me", ctrl.ListMine)
	group.Patch("/:id/read", ctrl.MarkRead)

	// Sending and managing are staff operations behind the capability.
	manage := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("notifications"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageNotifications, constants.RoleAdmin, constants.RolePrincipal),
	)
	manage.Get("/", ctrl.ListAll)
	manage.Post("/", ctrl.Create)
	manage.Delete("/:id", ctrl.Delete)
}
