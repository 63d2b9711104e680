package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OnlineClassModel struct {
	OnlineClassID uuid.UUID `gorm:"column:online_class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"online_class_id"`

	OnlineClassTitle      string `gorm:"column:online_class_title;type:varchar(150);not null" json:"online_class_title"`
	OnlineClassSubject    string `gorm:"column:online_class_subject;type:varchar(100);not null" json:"online_class_subject"`
	OnlineClassDepartment string `gorm:"column:online_class_department;type:varchar(100);not null;index" json:"online_class_department"`
	OnlineClassYear       string `gorm:"column:online_class_year;type:varchar(20);index" json:"online_class_year"`
	OnlineClassMeetingURL string `gorm:"column:online_class_meeting_url;type:text;not null" json:"online_class_meeting_url"`

	OnlineClassScheduledAt time.Time `gorm:"column:online_class_scheduled_at;not null;index" json:"online_class_scheduled_at"`
	OnlineClassDurationMin int       `gorm:"column:online_class_duration_min;not null;default:60" json:"online_class_duration_min"`
	OnlineClassCreatedBy   uuid.UUID `gorm:"column:online_class_created_by;type:uuid;not null" json:"online_class_created_by"`

	OnlineClassCreatedAt time.Time      `gorm:"column:online_class_created_at;autoCreateTime" json:"online_class_created_at"`
	OnlineClassUpdatedAt time.Time      `gorm:"column:online_class_updated_at;autoUpdateTime" json:"online_class_updated_at"`
	OnlineClassDeletedAt gorm.DeletedAt `gorm:"column:online_class_deleted_at;index" json:"-"`
}

func (OnlineClassModel) TableName() string {
	return "online_classes"
}
