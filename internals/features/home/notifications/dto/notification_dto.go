package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"campushub_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================
type CreateNotificationRequest struct {
	UserID       *uuid.UUID `json:"user_id"`
	Title        string     `json:"title" validate:"required,min=2,max=150"`
	Message      string     `json:"message" validate:"required"`
	TargetRole   string     `json:"target_role" validate:"omitempty,oneof=all student staff"`
	TargetDept   *string    `json:"target_dept"`
	TargetYear   *string    `json:"target_year"`
	TargetCourse *string    `json:"target_course"`
	Tags         []string   `json:"tags"`
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID uuid.UUID  `json:"notification_id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	TargetRole     string     `json:"target_role"`
	TargetDept     *string    `json:"target_dept,omitempty"`
	TargetYear     *string    `json:"target_year,omitempty"`
	TargetCourse   *string    `json:"target_course,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	IsRead         bool       `json:"is_read"`
	CreatedAt      string     `json:"created_at"`
}

// ================ CONVERSION =================
func (r *CreateNotificationRequest) ToModel(createdBy *uuid.UUID) *model.NotificationModel {
	targetRole := strings.TrimSpace(r.TargetRole)
	if targetRole == "" {
		targetRole = model.NotificationTargetAll
	}
	return &model.NotificationModel{
		NotificationUserID:       r.UserID,
		NotificationTitle:        strings.TrimSpace(r.Title),
		NotificationMessage:      r.Message,
		NotificationTargetRole:   targetRole,
		NotificationTargetDept:   r.TargetDept,
		NotificationTargetYear:   r.TargetYear,
		NotificationTargetCourse: r.TargetCourse,
		NotificationTags:         pq.StringArray(r.Tags),
		NotificationCreatedBy:    createdBy,
	}
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID: m.NotificationID,
		UserID:         m.NotificationUserID,
		Title:          m.NotificationTitle,
		Message:        m.NotificationMessage,
		TargetRole:     m.NotificationTargetRole,
		TargetDept:     m.NotificationTargetDept,
		TargetYear:     m.NotificationTargetYear,
		TargetCourse:   m.NotificationTargetCourse,
		Tags:           []string(m.NotificationTags),
		IsRead:         m.NotificationIsRead,
		CreatedAt:      m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
