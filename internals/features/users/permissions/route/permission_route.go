package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func PermissionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := permCtrl.NewPermissionController(db)

	// =====================
	// Permission delegation
	// =====================
	// SetPermissions gates on admin/principal inside the handler so the
	// rejection carries the structured 403 envelope.
	group := r.Group("/permissions")
	group.Get("/me", ctrl.GetMine)
	group.Post("/", ctrl.SetPermissions)

	admin := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorManagement("permissions"), constants.ManagementRoles...),
	)
	admin.Get("/", ctrl.GetAll)
	admin.Get("/:user_id", ctrl.GetForUser)
}
