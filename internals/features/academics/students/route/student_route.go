package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	studentCtrl "campushub_backend/internals/features/academics/students/controller"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	// =====================
	// Students
	// =====================
	group := r.Group("/students")

	// Readable by anyone authenticated; GetByID enforces the
	// own-record rule for students itself.
	group.Get("/me", ctrl.Me)
	group.Get("/:id", ctrl.GetByID)

	// Staff-only listing and management.
	staff := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("students"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageStudents, constants.RoleAdmin, constants.RolePrincipal),
	)
	staff.Get("/", ctrl.List)
	staff.Post("/", ctrl.Create)
	staff.Put("/:id", ctrl.Update)
	staff.Delete("/:id", ctrl.Delete)

	// Registration review: management roles, or teachers delegated the capability.
	review := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("students"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageRegistrations, constants.RoleAdmin, constants.RolePrincipal),
	)
	review.Post("/:id/approve", ctrl.Approve)
	review.Post("/:id/reject", ctrl.Reject)

	// Photo upload: controller checks that students only touch their own.
	group.Post("/:id/photo", ctrl.UploadPhoto)
}
