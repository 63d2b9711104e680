package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "campushub_backend/internals/features/academics/assignments/route"
	attendanceRoute "campushub_backend/internals/features/academics/attendance/route"
	facultyRoute "campushub_backend/internals/features/academics/faculty/route"
	onlineClassRoute "campushub_backend/internals/features/academics/onlineclasses/route"
	studentRoute "campushub_backend/internals/features/academics/students/route"
)

func AcademicsRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentRoutes(r, db)
	facultyRoute.FacultyRoutes(r, db)
	attendanceRoute.AttendanceRoutes(r, db)
	assignmentRoute.AssignmentRoutes(r, db)
	onlineClassRoute.OnlineClassRoutes(r, db)
}
