package dto

import (
	"strings"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/faculty/model"
)

// ================== REQUEST ==================
type CreateFacultyRequest struct {
	FacultyUserID      uuid.UUID `json:"faculty_user_id" validate:"required"`
	FacultyName        string    `json:"faculty_name" validate:"required,min=2,max=100"`
	FacultyEmail       string    `json:"faculty_email" validate:"required,email"`
	FacultyDepartment  string    `json:"faculty_department" validate:"required"`
	FacultyDesignation string    `json:"faculty_designation"`
	FacultySubjects    string    `json:"faculty_subjects"`
	FacultyMobile      *string   `json:"faculty_mobile"`
}

type UpdateFacultyRequest struct {
	FacultyName        *string `json:"faculty_name"`
	FacultyEmail       *string `json:"faculty_email" validate:"omitempty,email"`
	FacultyDepartment  *string `json:"faculty_department"`
	FacultyDesignation *string `json:"faculty_designation"`
	FacultySubjects    *string `json:"faculty_subjects"`
	FacultyMobile      *string `json:"faculty_mobile"`
}

// ================== RESPONSE ==================
type FacultyResponse struct {
	FacultyID          uuid.UUID `json:"faculty_id"`
	FacultyUserID      uuid.UUID `json:"faculty_user_id"`
	FacultyName        string    `json:"faculty_name"`
	FacultyEmail       string    `json:"faculty_email"`
	FacultyDepartment  string    `json:"faculty_department"`
	FacultyDesignation string    `json:"faculty_designation"`
	FacultySubjects    string    `json:"faculty_subjects"`
	FacultyMobile      *string   `json:"faculty_mobile,omitempty"`
	FacultyPhotoURL    *string   `json:"faculty_photo_url,omitempty"`
	FacultyCreatedAt   string    `json:"faculty_created_at"`
}

// ================ CONVERSION =================
func (r *CreateFacultyRequest) ToModel() *model.FacultyModel {
	return &model.FacultyModel{
		FacultyUserID:      r.FacultyUserID,
		FacultyName:        strings.TrimSpace(r.FacultyName),
		FacultyEmail:       strings.TrimSpace(r.FacultyEmail),
		FacultyDepartment:  strings.TrimSpace(r.FacultyDepartment),
		FacultyDesignation: strings.TrimSpace(r.FacultyDesignation),
		FacultySubjects:    strings.TrimSpace(r.FacultySubjects),
		FacultyMobile:      r.FacultyMobile,
	}
}

func (r *UpdateFacultyRequest) Apply(m *model.FacultyModel) {
	if r.FacultyName != nil {
		m.FacultyName = strings.TrimSpace(*r.FacultyName)
	}
	if r.FacultyEmail != nil {
		m.FacultyEmail = strings.TrimSpace(*r.FacultyEmail)
	}
	if r.FacultyDepartment != nil {
		m.FacultyDepartment = strings.TrimSpace(*r.FacultyDepartment)
	}
	if r.FacultyDesignation != nil {
		m.FacultyDesignation = strings.TrimSpace(*r.FacultyDesignation)
	}
	if r.FacultySubjects != nil {
		m.FacultySubjects = strings.TrimSpace(*r.FacultySubjects)
	}
	if r.FacultyMobile != nil {
		m.FacultyMobile = r.FacultyMobile
	}
}

func ToFacultyResponse(m *model.FacultyModel) *FacultyResponse {
	return &FacultyResponse{
		FacultyID:          m.FacultyID,
		FacultyUserID:      m.FacultyUserID,
		FacultyName:        m.FacultyName,
		FacultyEmail:       m.FacultyEmail,
		FacultyDepartment:  m.FacultyDepartment,
		FacultyDesignation: m.FacultyDesignation,
		FacultySubjects:    m.FacultySubjects,
		FacultyMobile:      m.FacultyMobile,
		FacultyPhotoURL:    m.FacultyPhotoURL,
		FacultyCreatedAt:   m.FacultyCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToFacultyResponseList(models []model.FacultyModel) []FacultyResponse {
	result := make([]FacultyResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToFacultyResponse(&models[i]))
	}
	return result
}
