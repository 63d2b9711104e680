package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	assignmentCtrl "campushub_backend/internals/features/academics/assignments/controller"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func AssignmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assignmentCtrl.NewAssignmentController(db)
	subCtrl := assignmentCtrl.NewSubmissionController(db)

	// =====================
	// Assignments
	// =====================
	group := r.Group("/assignments")

	// Anyone authenticated can browse assignments.
	group.Get("/", ctrl.List)
	group.Get("/submissions/me", subCtrl.MySubmissions)
	group.Get("/:id", ctrl.GetByID)

	// Students submit their work.
	group.Post("/:id/submit", subCtrl.Submit)

	// Authoring and grading: staff behind the capability.
	manage := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("assignments"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageAssignments, constants.RoleAdmin, constants.RolePrincipal),
	)
	manage.Post("/", ctrl.Create)
	manage.Put("/:id", ctrl.Update)
	manage.Delete("/:id", ctrl.Delete)
	manage.Get("/:id/submissions", subCtrl.ListForAssignment)
	manage.Patch("/submissions/:submission_id/grade", subCtrl.Grade)
}
