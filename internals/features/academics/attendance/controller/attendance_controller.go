package controller

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/attendance/dto"
	"campushub_backend/internals/features/academics/attendance/model"
	"campushub_backend/internals/features/academics/attendance/service"
	studentModel "campushub_backend/internals/features/academics/students/model"
	notifModel "campushub_backend/internals/features/home/notifications/model"
	helper "campushub_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// resolveThreshold reads the threshold query param, falling back to the
// configured default. The UI offers 40-90 in steps of 5.
func resolveThreshold(c *fiber.Ctx) int {
	threshold := configs.LowAttendanceThreshold
	if raw := c.Query("threshold"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			threshold = parsed
		}
	}
	if threshold < 40 {
		threshold = 40
	}
	if threshold > 90 {
		threshold = 90
	}
	return threshold
}

// =============================
// ========= MARK DAY ==========
// =============================
// Replaces every attendance record for the given date in one
// transaction. Partial replacement is never left behind.
func (ctrl *AttendanceController) MarkDay(c *fiber.Ctx) error {
	var req dto.MarkDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := req.ParseDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	role, _ := c.Locals("userRole").(string)
	if !service.CanModifyAttendance(role, date, time.Now(), configs.AttendanceWindow) {
		return helper.JsonError(c, fiber.StatusForbidden,
			"Attendance for this date cannot be modified right now (marking window is closed)")
	}

	actorID, _ := c.Locals("user_id").(string)
	markedBy, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Reject duplicate students in the same payload up front.
	seen := make(map[uuid.UUID]bool, len(req.Entries))
	records := make([]model.AttendanceModel, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if seen[entry.StudentID] {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Duplicate entry for student %s", entry.StudentID))
		}
		seen[entry.StudentID] = true
		records = append(records, model.AttendanceModel{
			AttendanceStudentID: entry.StudentID,
			AttendanceDate:      date,
			AttendanceStatus:    entry.Status,
			AttendanceMarkedBy:  markedBy,
		})
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_date = ?", date).
			Delete(&model.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		log.Println("❌ failed to replace attendance for", req.Date, ":", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.JsonCreated(c, "Attendance saved successfully", dto.ToAttendanceResponseList(records))
}

// =============================
// ========== LISTING ==========
// =============================

// List filters by a single date, a from/to range, a student, or any
// combination. At least one filter is required.
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.AttendanceModel{})
	filtered := false

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		query = query.Where("attendance_date = ?", date)
		filtered = true
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
		}
		query = query.Where("attendance_date >= ?", from)
		filtered = true
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
		}
		query = query.Where("attendance_date <= ?", to)
		filtered = true
	}
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		query = query.Where("attendance_student_id = ?", studentID)
		filtered = true
	}
	if !filtered {
		return helper.JsonError(c, fiber.StatusBadRequest, "Provide at least one of date, from, to, student_id")
	}

	var records []model.AttendanceModel
	if err := query.
		Order("attendance_date ASC, attendance_student_id ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "Attendance fetched successfully", dto.ToAttendanceResponseList(records))
}

// =============================
// ========= SUMMARIES =========
// =============================
func (ctrl *AttendanceController) summarize(studentID uuid.UUID, threshold int) (*dto.StudentSummaryResponse, error) {
	var records []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_student_id = ?", studentID).
		Find(&records).Error; err != nil {
		return nil, err
	}

	summary := service.Aggregate(records, threshold)
	return &dto.StudentSummaryResponse{
		StudentID:  studentID,
		Present:    summary.Present,
		Absent:     summary.Absent,
		Total:      summary.Total,
		Percentage: summary.Percentage,
		Low:        summary.Low,
		Threshold:  threshold,
	}, nil
}

// StudentSummary returns one student's aggregate. Students may only ask
// for their own.
func (ctrl *AttendanceController) StudentSummary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleStudent {
		var student studentModel.StudentModel
		if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
		}
		actorID, _ := c.Locals("user_id").(string)
		if actorID != student.StudentUserID.String() {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own attendance")
		}
	}

	summary, err := ctrl.summarize(studentID, resolveThreshold(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate attendance")
	}
	return helper.JsonOK(c, "Attendance summary fetched successfully", summary)
}

// MySummary is the student-facing shortcut for their own aggregate.
func (ctrl *AttendanceController) MySummary(c *fiber.Ctx) error {
	actorID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "No student record linked to this account")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	summary, err := ctrl.summarize(student.StudentID, resolveThreshold(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate attendance")
	}
	return helper.JsonOK(c, "Attendance summary fetched successfully", summary)
}

// =============================
// ======= LOW REPORT ==========
// =============================
func (ctrl *AttendanceController) lowRows(c *fiber.Ctx, threshold int) ([]dto.LowAttendanceRow, []studentModel.StudentModel, error) {
	query := ctrl.DB.Where("student_status = ?", studentModel.StudentStatusApproved)
	if dept := c.Query("department"); dept != "" {
		query = query.Where("student_department = ?", dept)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("student_year = ?", year)
	}

	var students []studentModel.StudentModel
	if err := query.Find(&students).Error; err != nil {
		return nil, nil, err
	}

	rows := make([]dto.LowAttendanceRow, 0)
	flagged := make([]studentModel.StudentModel, 0)
	for i := range students {
		var records []model.AttendanceModel
		if err := ctrl.DB.
			Where("attendance_student_id = ?", students[i].StudentID).
			Find(&records).Error; err != nil {
			return nil, nil, err
		}
		summary := service.Aggregate(records, threshold)
		if !summary.Low {
			continue
		}
		rows = append(rows, dto.LowAttendanceRow{
			StudentID:      students[i].StudentID,
			StudentName:    students[i].StudentName,
			RegistrationNo: students[i].StudentRegistrationNo,
			Department:     students[i].StudentDepartment,
			Year:           students[i].StudentYear,
			Present:        summary.Present,
			Total:          summary.Total,
			Percentage:     summary.Percentage,
		})
		flagged = append(flagged, students[i])
	}
	return rows, flagged, nil
}

func (ctrl *AttendanceController) LowReport(c *fiber.Ctx) error {
	rows, _, err := ctrl.lowRows(c, resolveThreshold(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build low attendance report")
	}
	return helper.JsonOK(c, "Low attendance report fetched successfully", rows)
}

// SendLowAlerts creates a direct notification for every student below
// the threshold.
func (ctrl *AttendanceController) SendLowAlerts(c *fiber.Ctx) error {
	threshold := resolveThreshold(c)
	rows, flagged, err := ctrl.lowRows(c, threshold)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build low attendance report")
	}

	var createdBy *uuid.UUID
	if actorID, ok := c.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(actorID); err == nil {
			createdBy = &parsed
		}
	}

	notifications := make([]notifModel.NotificationModel, 0, len(rows))
	for i := range rows {
		userID := flagged[i].StudentUserID
		notifications = append(notifications, notifModel.NotificationModel{
			NotificationUserID: &userID,
			NotificationTitle:  "Low attendance warning",
			NotificationMessage: fmt.Sprintf(
				"Your attendance is %d%%, below the required %d%%. Please contact your department office.",
				rows[i].Percentage, threshold),
			NotificationTargetRole: notifModel.NotificationTargetStudent,
			NotificationTags:       []string{"attendance", "alert"},
			NotificationCreatedBy:  createdBy,
		})
	}

	if len(notifications) > 0 {
		if err := ctrl.DB.Create(&notifications).Error; err != nil {
			log.Println("❌ failed to create low attendance alerts:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send alerts")
		}
	}

	return helper.JsonOK(c, "Low attendance alerts sent successfully", fiber.Map{
		"alerts_sent": len(notifications),
		"threshold":   threshold,
	})
}
