package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`

	AssignmentTitle       string `gorm:"column:assignment_title;type:varchar(150);not null" json:"assignment_title"`
	AssignmentDescription string `gorm:"column:assignment_description;type:text" json:"assignment_description"`
	AssignmentSubject     string `gorm:"column:assignment_subject;type:varchar(100);not null" json:"assignment_subject"`
	AssignmentDepartment  string `gorm:"column:assignment_department;type:varchar(100);not null;index" json:"assignment_department"`
	AssignmentYear        string `gorm:"column:assignment_year;type:varchar(20);index" json:"assignment_year"`

	// Attachment metadata (filename, url, size) as a JSON blob.
	AssignmentAttachment datatypes.JSON `gorm:"column:assignment_attachment;type:jsonb" json:"assignment_attachment,omitempty"`

	AssignmentDueDate   time.Time `gorm:"column:assignment_due_date;not null" json:"assignment_due_date"`
	AssignmentCreatedBy uuid.UUID `gorm:"column:assignment_created_by;type:uuid;not null" json:"assignment_created_by"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"-"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
