package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	classCtrl "campushub_backend/internals/features/academics/onlineclasses/controller"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func OnlineClassRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewOnlineClassController(db)

	// =====================
	// Online classes
	// =====================
	group := r.Group("/online-classes")

	group.Get("/upcoming", ctrl.Upcoming)

	manage := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("online classes"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageOnlineClasses, constants.RoleAdmin, constants.RolePrincipal),
	)
	manage.Get("/", ctrl.List)
	manage.Post("/", ctrl.Create)
	manage.Put("/:id", ctrl.Update)
	manage.Delete("/:id", ctrl.Delete)
}
