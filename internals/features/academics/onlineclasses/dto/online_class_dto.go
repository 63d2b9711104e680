package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/onlineclasses/model"
)

// ================== REQUEST ==================
type CreateOnlineClassRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=150"`
	Subject     string    `json:"subject" validate:"required"`
	Department  string    `json:"department" validate:"required"`
	Year        string    `json:"year"`
	MeetingURL  string    `json:"meeting_url" validate:"required,url"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	DurationMin int       `json:"duration_min" validate:"omitempty,min=10,max=480"`
}

type UpdateOnlineClassRequest struct {
	Title       *string    `json:"title"`
	Subject     *string    `json:"subject"`
	Year        *string    `json:"year"`
	MeetingURL  *string    `json:"meeting_url" validate:"omitempty,url"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	DurationMin *int       `json:"duration_min" validate:"omitempty,min=10,max=480"`
}

// ================== RESPONSE ==================
type OnlineClassResponse struct {
	OnlineClassID uuid.UUID `json:"online_class_id"`
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	Department    string    `json:"department"`
	Year          string    `json:"year"`
	MeetingURL    string    `json:"meeting_url"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationMin   int       `json:"duration_min"`
	CreatedBy     uuid.UUID `json:"created_by"`
}

// ================ CONVERSION =================
func (r *CreateOnlineClassRequest) ToModel(createdBy uuid.UUID) *model.OnlineClassModel {
	duration := r.DurationMin
	if duration == 0 {
		duration = 60
	}
	return &model.OnlineClassModel{
		OnlineClassTitle:       strings.TrimSpace(r.Title),
		OnlineClassSubject:     strings.TrimSpace(r.Subject),
		OnlineClassDepartment:  strings.TrimSpace(r.Department),
		OnlineClassYear:        strings.TrimSpace(r.Year),
		OnlineClassMeetingURL:  strings.TrimSpace(r.MeetingURL),
		OnlineClassScheduledAt: r.ScheduledAt,
		OnlineClassDurationMin: duration,
		OnlineClassCreatedBy:   createdBy,
	}
}

func (r *UpdateOnlineClassRequest) Apply(m *model.OnlineClassModel) {
	if r.Title != nil {
		m.OnlineClassTitle = strings.TrimSpace(*r.Title)
	}
	if r.Subject != nil {
		m.OnlineClassSubject = strings.TrimSpace(*r.Subject)
	}
	if r.Year != nil {
		m.OnlineClassYear = strings.TrimSpace(*r.Year)
	}
	if r.MeetingURL != nil {
		m.OnlineClassMeetingURL = strings.TrimSpace(*r.MeetingURL)
	}
	if r.ScheduledAt != nil {
		m.OnlineClassScheduledAt = *r.ScheduledAt
	}
	if r.DurationMin != nil {
		m.OnlineClassDurationMin = *r.DurationMin
	}
}

func ToOnlineClassResponse(m *model.OnlineClassModel) *OnlineClassResponse {
	return &OnlineClassResponse{
		OnlineClassID: m.OnlineClassID,
		Title:         m.OnlineClassTitle,
		Subject:       m.OnlineClassSubject,
		Department:    m.OnlineClassDepartment,
		Year:          m.OnlineClassYear,
		MeetingURL:    m.OnlineClassMeetingURL,
		ScheduledAt:   m.OnlineClassScheduledAt,
		DurationMin:   m.OnlineClassDurationMin,
		CreatedBy:     m.OnlineClassCreatedBy,
	}
}

func ToOnlineClassResponseList(models []model.OnlineClassModel) []OnlineClassResponse {
	result := make([]OnlineClassResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToOnlineClassResponse(&models[i]))
	}
	return result
}
