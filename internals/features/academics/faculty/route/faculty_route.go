package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	facultyCtrl "campushub_backend/internals/features/academics/faculty/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func FacultyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := facultyCtrl.NewFacultyController(db)

	// =====================
	// Faculty
	// =====================
	group := r.Group("/faculty")

	// Directory is readable by anyone authenticated.
	group.Get("/", ctrl.List)
	group.Get("/me", ctrl.Me)
	group.Get("/:id", ctrl.GetByID)

	// Management only for writes.
	admin := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorManagement("faculty"), constants.ManagementRoles...),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
	admin.Post("/:id/photo", ctrl.UploadPhoto)
}
