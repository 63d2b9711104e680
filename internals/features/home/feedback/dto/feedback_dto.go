package dto

import (
	"strings"

	"github.com/google/uuid"

	"campushub_backend/internals/features/home/feedback/model"
)

// ================== REQUEST ==================
type CreateFeedbackRequest struct {
	Subject string `json:"subject" validate:"required,min=2,max=150"`
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// ================== RESPONSE ==================
type FeedbackResponse struct {
	FeedbackID uuid.UUID `json:"feedback_id"`
	UserID     uuid.UUID `json:"user_id"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Rating     int       `json:"rating"`
	CreatedAt  string    `json:"created_at"`
}

// ================ CONVERSION =================
func (r *CreateFeedbackRequest) ToModel(userID uuid.UUID) *model.FeedbackModel {
	return &model.FeedbackModel{
		FeedbackUserID:  userID,
		FeedbackSubject: strings.TrimSpace(r.Subject),
		FeedbackMessage: r.Message,
		FeedbackRating:  r.Rating,
	}
}

func ToFeedbackResponse(m *model.FeedbackModel) *FeedbackResponse {
	return &FeedbackResponse{
		FeedbackID: m.FeedbackID,
		UserID:     m.FeedbackUserID,
		Subject:    m.FeedbackSubject,
		Message:    m.FeedbackMessage,
		Rating:     m.FeedbackRating,
		CreatedAt:  m.FeedbackCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToFeedbackResponseList(models []model.FeedbackModel) []FeedbackResponse {
	result := make([]FeedbackResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToFeedbackResponse(&models[i]))
	}
	return result
}
