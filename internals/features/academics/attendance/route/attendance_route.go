package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	attendanceCtrl "campushub_backend/internals/features/academics/attendance/controller"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	// =====================
	// Attendance
	// =====================
	group := r.Group("/attendance")

	// Student-facing reads. StudentSummary enforces the own-record rule
	// itself, so it stays outside the staff group.
	group.Get("/summary/me", ctrl.MySummary)
	group.Get("/summary/:student_id", ctrl.StudentSummary)

	// Marking and day listings: staff behind the capability. The window
	// rule is applied inside MarkDay, where "now" is final.
	staff := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("attendance"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageAttendance, constants.RoleAdmin, constants.RolePrincipal),
	)
	staff.Post("/", ctrl.MarkDay)
	staff.Get("/", ctrl.List)

	// Reports and alert fanout.
	reports := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("attendance"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapViewReports, constants.RoleAdmin, constants.RolePrincipal),
	)
	reports.Get("/reports/low", ctrl.LowReport)
	reports.Post("/reports/low/alerts", ctrl.SendLowAlerts)
}
