package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "pending"
	StudentStatusApproved StudentStatus = "approved"
	StudentStatusRejected StudentStatus = "rejected"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// FK to the login account
	StudentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_user;column:student_user_id" json:"student_user_id"`

	StudentName           string `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
	StudentEmail          string `gorm:"type:varchar(255);not null;column:student_email" json:"student_email"`
	StudentRegistrationNo string `gorm:"type:varchar(50);not null;uniqueIndex:idx_student_registration_no;column:student_registration_no" json:"student_registration_no"`

	StudentDepartment string `gorm:"type:varchar(100);not null;column:student_department;index:idx_student_department" json:"student_department"`
	StudentCourse     string `gorm:"type:varchar(100);column:student_course" json:"student_course"`
	StudentYear       string `gorm:"type:varchar(20);column:student_year;index:idx_student_year" json:"student_year"`
	StudentSection    string `gorm:"type:varchar(10);column:student_section" json:"student_section"`

	StudentParentMobile *string `gorm:"type:varchar(20);column:student_parent_mobile" json:"student_parent_mobile,omitempty"`
	StudentPhotoURL     *string `gorm:"type:text;column:student_photo_url" json:"student_photo_url,omitempty"`

	// registration workflow state
	StudentStatus StudentStatus `gorm:"type:varchar(16);not null;default:pending;column:student_status;index:idx_student_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
