package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	NotificationTargetAll     = "all"
	NotificationTargetStudent = "student"
	NotificationTargetStaff   = "staff"
)

type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`

	// Null means broadcast; a value means a direct/personal notification.
	NotificationUserID *uuid.UUID `gorm:"column:notification_user_id;type:uuid;index" json:"notification_user_id,omitempty"`

	NotificationTitle   string `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationMessage string `gorm:"column:notification_message;type:text;not null" json:"notification_message"`

	// Targeting fields. Dept/year/course only constrain when target_role
	// is "student"; null or empty string is a wildcard.
	NotificationTargetRole   string  `gorm:"column:notification_target_role;type:varchar(20);not null;default:'all';index" json:"notification_target_role"`
	NotificationTargetDept   *string `gorm:"column:notification_target_dept;type:varchar(100)" json:"notification_target_dept,omitempty"`
	NotificationTargetYear   *string `gorm:"column:notification_target_year;type:varchar(20)" json:"notification_target_year,omitempty"`
	NotificationTargetCourse *string `gorm:"column:notification_target_course;type:varchar(100)" json:"notification_target_course,omitempty"`

	NotificationTags pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags,omitempty"`

	NotificationIsRead    bool           `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationCreatedBy *uuid.UUID     `gorm:"column:notification_created_by;type:uuid" json:"notification_created_by,omitempty"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"-"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
