package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacultyModel struct {
	FacultyID     uuid.UUID `gorm:"column:faculty_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"faculty_id"`
	FacultyUserID uuid.UUID `gorm:"column:faculty_user_id;type:uuid;not null;uniqueIndex" json:"faculty_user_id"`

	FacultyName        string  `gorm:"column:faculty_name;type:varchar(100);not null" json:"faculty_name"`
	FacultyEmail       string  `gorm:"column:faculty_email;type:varchar(100);not null" json:"faculty_email"`
	FacultyDepartment  string  `gorm:"column:faculty_department;type:varchar(100);not null;index" json:"faculty_department"`
	FacultyDesignation string  `gorm:"column:faculty_designation;type:varchar(100)" json:"faculty_designation"`
	FacultySubjects    string  `gorm:"column:faculty_subjects;type:text" json:"faculty_subjects"`
	FacultyMobile      *string `gorm:"column:faculty_mobile;type:varchar(20)" json:"faculty_mobile,omitempty"`
	FacultyPhotoURL    *string `gorm:"column:faculty_photo_url;type:text" json:"faculty_photo_url,omitempty"`

	FacultyCreatedAt time.Time      `gorm:"column:faculty_created_at;autoCreateTime" json:"faculty_created_at"`
	FacultyUpdatedAt time.Time      `gorm:"column:faculty_updated_at;autoUpdateTime" json:"faculty_updated_at"`
	FacultyDeletedAt gorm.DeletedAt `gorm:"column:faculty_deleted_at;index" json:"-"`
}

func (FacultyModel) TableName() string {
	return "faculty"
}
