package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
)

// One row per (student, date). Replacing a day's marks deletes the old
// rows and inserts fresh ones, so this table carries no soft delete.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:idx_attendance_student_date" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:idx_attendance_student_date" json:"attendance_date"`
	AttendanceStatus    string    `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceMarkedBy  uuid.UUID `gorm:"column:attendance_marked_by;type:uuid;not null" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}

func IsValidAttendanceStatus(status string) bool {
	return status == AttendanceStatusPresent || status == AttendanceStatusAbsent
}
