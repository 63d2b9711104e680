package dto

import (
	"strings"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/students/model"
)

// ================== REQUEST ==================
type CreateStudentRequest struct {
	StudentUserID         uuid.UUID `json:"student_user_id" validate:"required"`
	StudentName           string    `json:"student_name" validate:"required,min=2,max=100"`
	StudentEmail          string    `json:"student_email" validate:"required,email"`
	StudentRegistrationNo string    `json:"student_registration_no" validate:"required,min=3,max=50"`
	StudentDepartment     string    `json:"student_department" validate:"required"`
	StudentCourse         string    `json:"student_course"`
	StudentYear           string    `json:"student_year"`
	StudentSection        string    `json:"student_section"`
	StudentParentMobile   *string   `json:"student_parent_mobile"`
}

type UpdateStudentRequest struct {
	StudentName         *string `json:"student_name"`
	StudentEmail        *string `json:"student_email" validate:"omitempty,email"`
	StudentDepartment   *string `json:"student_department"`
	StudentCourse       *string `json:"student_course"`
	StudentYear         *string `json:"student_year"`
	StudentSection      *string `json:"student_section"`
	StudentParentMobile *string `json:"student_parent_mobile"`
}

// ================== RESPONSE ==================
type StudentResponse struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentUserID         uuid.UUID `json:"student_user_id"`
	StudentName           string    `json:"student_name"`
	StudentEmail          string    `json:"student_email"`
	StudentRegistrationNo string    `json:"student_registration_no"`
	StudentDepartment     string    `json:"student_department"`
	StudentCourse         string    `json:"student_course"`
	StudentYear           string    `json:"student_year"`
	StudentSection        string    `json:"student_section"`
	StudentParentMobile   *string   `json:"student_parent_mobile,omitempty"`
	StudentPhotoURL       *string   `json:"student_photo_url,omitempty"`
	StudentStatus         string    `json:"student_status"`
	StudentCreatedAt      string    `json:"student_created_at"`
}

// ================ CONVERSION =================
func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentUserID:         r.StudentUserID,
		StudentName:           strings.TrimSpace(r.StudentName),
		StudentEmail:          strings.TrimSpace(r.StudentEmail),
		StudentRegistrationNo: strings.TrimSpace(r.StudentRegistrationNo),
		StudentDepartment:     strings.TrimSpace(r.StudentDepartment),
		StudentCourse:         strings.TrimSpace(r.StudentCourse),
		StudentYear:           strings.TrimSpace(r.StudentYear),
		StudentSection:        strings.TrimSpace(r.StudentSection),
		StudentParentMobile:   r.StudentParentMobile,
	}
}

// Apply copies the non-nil fields onto an existing model.
func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentEmail != nil {
		m.StudentEmail = strings.TrimSpace(*r.StudentEmail)
	}
	if r.StudentDepartment != nil {
		m.StudentDepartment = strings.TrimSpace(*r.StudentDepartment)
	}
	if r.StudentCourse != nil {
		m.StudentCourse = strings.TrimSpace(*r.StudentCourse)
	}
	if r.StudentYear != nil {
		m.StudentYear = strings.TrimSpace(*r.StudentYear)
	}
	if r.StudentSection != nil {
		m.StudentSection = strings.TrimSpace(*r.StudentSection)
	}
	if r.StudentParentMobile != nil {
		m.StudentParentMobile = r.StudentParentMobile
	}
}

func ToStudentResponse(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:             m.StudentID,
		StudentUserID:         m.StudentUserID,
		StudentName:           m.StudentName,
		StudentEmail:          m.StudentEmail,
		StudentRegistrationNo: m.StudentRegistrationNo,
		StudentDepartment:     m.StudentDepartment,
		StudentCourse:         m.StudentCourse,
		StudentYear:           m.StudentYear,
		StudentSection:        m.StudentSection,
		StudentParentMobile:   m.StudentParentMobile,
		StudentPhotoURL:       m.StudentPhotoURL,
		StudentStatus:         string(m.StudentStatus),
		StudentCreatedAt:      m.StudentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToStudentResponseList(models []model.StudentModel) []StudentResponse {
	result := make([]StudentResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToStudentResponse(&models[i]))
	}
	return result
}
