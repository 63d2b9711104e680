package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/academics/assignments/model"
)

// ================== REQUEST ==================
type CreateAssignmentRequest struct {
	Title       string         `json:"title" validate:"required,min=2,max=150"`
	Description string         `json:"description"`
	Subject     string         `json:"subject" validate:"required"`
	Department  string         `json:"department" validate:"required"`
	Year        string         `json:"year"`
	Attachment  datatypes.JSON `json:"attachment"`
	DueDate     time.Time      `json:"due_date" validate:"required"`
}

type UpdateAssignmentRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Subject     *string        `json:"subject"`
	Year        *string        `json:"year"`
	Attachment  datatypes.JSON `json:"attachment"`
	DueDate     *time.Time     `json:"due_date"`
}

type SubmitAssignmentRequest struct {
	ContentURL string `json:"content_url" validate:"required,url"`
	Note       string `json:"note"`
}

type GradeSubmissionRequest struct {
	Grade   string `json:"grade" validate:"required,max=10"`
	Remarks string `json:"remarks"`
}

// ================== RESPONSE ==================
type AssignmentResponse struct {
	AssignmentID uuid.UUID      `json:"assignment_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Subject      string         `json:"subject"`
	Department   string         `json:"department"`
	Year         string         `json:"year"`
	Attachment   datatypes.JSON `json:"attachment,omitempty"`
	DueDate      time.Time      `json:"due_date"`
	CreatedBy    uuid.UUID      `json:"created_by"`
	CreatedAt    string         `json:"created_at"`
}

type SubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	ContentURL   string    `json:"content_url"`
	Note         string    `json:"note"`
	Grade        *string   `json:"grade,omitempty"`
	Remarks      *string   `json:"remarks,omitempty"`
	SubmittedAt  string    `json:"submitted_at"`
}

// ================ CONVERSION =================
func (r *CreateAssignmentRequest) ToModel(createdBy uuid.UUID) *model.AssignmentModel {
	return &model.AssignmentModel{
		AssignmentTitle:       strings.TrimSpace(r.Title),
		AssignmentDescription: r.Description,
		AssignmentSubject:     strings.TrimSpace(r.Subject),
		AssignmentDepartment:  strings.TrimSpace(r.Department),
		AssignmentYear:        strings.TrimSpace(r.Year),
		AssignmentAttachment:  r.Attachment,
		AssignmentDueDate:     r.DueDate,
		AssignmentCreatedBy:   createdBy,
	}
}

func (r *UpdateAssignmentRequest) Apply(m *model.AssignmentModel) {
	if r.Title != nil {
		m.AssignmentTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.AssignmentDescription = *r.Description
	}
	if r.Subject != nil {
		m.AssignmentSubject = strings.TrimSpace(*r.Subject)
	}
	if r.Year != nil {
		m.AssignmentYear = strings.TrimSpace(*r.Year)
	}
	if r.Attachment != nil {
		m.AssignmentAttachment = r.Attachment
	}
	if r.DueDate != nil {
		m.AssignmentDueDate = *r.DueDate
	}
}

func ToAssignmentResponse(m *model.AssignmentModel) *AssignmentResponse {
	return &AssignmentResponse{
		AssignmentID: m.AssignmentID,
		Title:        m.AssignmentTitle,
		Description:  m.AssignmentDescription,
		Subject:      m.AssignmentSubject,
		Department:   m.AssignmentDepartment,
		Year:         m.AssignmentYear,
		Attachment:   m.AssignmentAttachment,
		DueDate:      m.AssignmentDueDate,
		CreatedBy:    m.AssignmentCreatedBy,
		CreatedAt:    m.AssignmentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToAssignmentResponseList(models []model.AssignmentModel) []AssignmentResponse {
	result := make([]AssignmentResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAssignmentResponse(&models[i]))
	}
	return result
}

func ToSubmissionResponse(m *model.SubmissionModel) *SubmissionResponse {
	return &SubmissionResponse{
		SubmissionID: m.SubmissionID,
		AssignmentID: m.SubmissionAssignmentID,
		StudentID:    m.SubmissionStudentID,
		ContentURL:   m.SubmissionContentURL,
		Note:         m.SubmissionNote,
		Grade:        m.SubmissionGrade,
		Remarks:      m.SubmissionRemarks,
		SubmittedAt:  m.SubmissionSubmittedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToSubmissionResponseList(models []model.SubmissionModel) []SubmissionResponse {
	result := make([]SubmissionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToSubmissionResponse(&models[i]))
	}
	return result
}
