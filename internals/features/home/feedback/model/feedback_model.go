package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackModel struct {
	FeedbackID     uuid.UUID `gorm:"column:feedback_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`
	FeedbackUserID uuid.UUID `gorm:"column:feedback_user_id;type:uuid;not null;index" json:"feedback_user_id"`

	FeedbackSubject string `gorm:"column:feedback_subject;type:varchar(150);not null" json:"feedback_subject"`
	FeedbackMessage string `gorm:"column:feedback_message;type:text;not null" json:"feedback_message"`
	FeedbackRating  int    `gorm:"column:feedback_rating;not null;default:0" json:"feedback_rating"`

	FeedbackCreatedAt time.Time      `gorm:"column:feedback_created_at;autoCreateTime" json:"feedback_created_at"`
	FeedbackDeletedAt gorm.DeletedAt `gorm:"column:feedback_deleted_at;index" json:"-"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
