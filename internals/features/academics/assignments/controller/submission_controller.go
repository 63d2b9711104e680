package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/assignments/dto"
	"campushub_backend/internals/features/academics/assignments/model"
	studentModel "campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// studentForUser resolves the caller's student record.
func (ctrl *SubmissionController) studentForUser(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	actorID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "No student record linked to this account")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return &student, nil
}

// =============================
// ========== SUBMIT ===========
// =============================
// A re-submission before grading replaces the earlier upload.
func (ctrl *SubmissionController) Submit(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var req dto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := ctrl.studentForUser(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	var submission model.SubmissionModel
	err = ctrl.DB.First(&submission,
		"submission_assignment_id = ? AND submission_student_id = ?",
		assignmentID, student.StudentID).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		submission = model.SubmissionModel{
			SubmissionAssignmentID: assignmentID,
			SubmissionStudentID:    student.StudentID,
			SubmissionContentURL:   strings.TrimSpace(req.ContentURL),
			SubmissionNote:         req.Note,
		}
		if err := ctrl.DB.Create(&submission).Error; err != nil {
			log.Println("❌ failed to create submission:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit assignment")
		}
		return helper.JsonCreated(c, "Assignment submitted successfully", dto.ToSubmissionResponse(&submission))

	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submission")

	default:
		if submission.SubmissionGrade != nil {
			return helper.JsonError(c, fiber.StatusConflict, "Submission has already been graded")
		}
		submission.SubmissionContentURL = strings.TrimSpace(req.ContentURL)
		submission.SubmissionNote = req.Note
		if err := ctrl.DB.Save(&submission).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update submission")
		}
		return helper.JsonUpdated(c, "Submission updated successfully", dto.ToSubmissionResponse(&submission))
	}
}

// =============================
// ======= LIST / GRADE ========
// =============================
func (ctrl *SubmissionController) ListForAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var submissions []model.SubmissionModel
	if err := ctrl.DB.
		Where("submission_assignment_id = ?", assignmentID).
		Order("submission_submitted_at ASC").
		Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.JsonOK(c, "Submissions fetched successfully", dto.ToSubmissionResponseList(submissions))
}

func (ctrl *SubmissionController) MySubmissions(c *fiber.Ctx) error {
	student, err := ctrl.studentForUser(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var submissions []model.SubmissionModel
	if err := ctrl.DB.
		Where("submission_student_id = ?", student.StudentID).
		Order("submission_submitted_at DESC").
		Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.JsonOK(c, "Submissions fetched successfully", dto.ToSubmissionResponseList(submissions))
}

func (ctrl *SubmissionController) Grade(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("submission_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var submission model.SubmissionModel
	if err := ctrl.DB.First(&submission, "submission_id = ?", submissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}

	grade := strings.TrimSpace(req.Grade)
	submission.SubmissionGrade = &grade
	submission.SubmissionRemarks = &req.Remarks
	if err := ctrl.DB.Save(&submission).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}

	return helper.JsonUpdated(c, "Submission graded successfully", dto.ToSubmissionResponse(&submission))
}
