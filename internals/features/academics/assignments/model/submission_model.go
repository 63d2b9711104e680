package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionModel struct {
	SubmissionID           uuid.UUID `gorm:"column:submission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:idx_submission_assignment_student" json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `gorm:"column:submission_student_id;type:uuid;not null;uniqueIndex:idx_submission_assignment_student" json:"submission_student_id"`

	SubmissionContentURL string  `gorm:"column:submission_content_url;type:text" json:"submission_content_url"`
	SubmissionNote       string  `gorm:"column:submission_note;type:text" json:"submission_note"`
	SubmissionGrade      *string `gorm:"column:submission_grade;type:varchar(10)" json:"submission_grade,omitempty"`
	SubmissionRemarks    *string `gorm:"column:submission_remarks;type:text" json:"submission_remarks,omitempty"`

	SubmissionSubmittedAt time.Time      `gorm:"column:submission_submitted_at;autoCreateTime" json:"submission_submitted_at"`
	SubmissionUpdatedAt   time.Time      `gorm:"column:submission_updated_at;autoUpdateTime" json:"submission_updated_at"`
	SubmissionDeletedAt   gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"-"`
}

func (SubmissionModel) TableName() string {
	return "assignment_submissions"
}
