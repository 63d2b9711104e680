package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/attendance/model"
)

const DateLayout = "2006-01-02"

// ================== REQUEST ==================
type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent"`
}

// MarkDayRequest replaces all attendance records for one calendar day.
type MarkDayRequest struct {
	Date    string            `json:"date" validate:"required"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// ================== RESPONSE ==================
type AttendanceResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	MarkedBy     uuid.UUID `json:"marked_by"`
}

type StudentSummaryResponse struct {
	StudentID  uuid.UUID `json:"student_id"`
	Present    int       `json:"present"`
	Absent     int       `json:"absent"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Low        bool      `json:"low"`
	Threshold  int       `json:"threshold"`
}

type LowAttendanceRow struct {
	StudentID      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	RegistrationNo string    `json:"registration_no"`
	Department     string    `json:"department"`
	Year           string    `json:"year"`
	Present        int       `json:"present"`
	Total          int       `json:"total"`
	Percentage     int       `json:"percentage"`
}

// ================ CONVERSION =================
func (r *MarkDayRequest) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

func ToAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID: m.AttendanceID,
		StudentID:    m.AttendanceStudentID,
		Date:         m.AttendanceDate.Format(DateLayout),
		Status:       m.AttendanceStatus,
		MarkedBy:     m.AttendanceMarkedBy,
	}
}

func ToAttendanceResponseList(models []model.AttendanceModel) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAttendanceResponse(&models[i]))
	}
	return result
}
