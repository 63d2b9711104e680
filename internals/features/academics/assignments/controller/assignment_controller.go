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
	helper "campushub_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// =============================
// ======== ASSIGNMENTS ========
// =============================
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	actorID, _ := c.Locals("user_id").(string)
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	assignment := req.ToModel(createdBy)
	if err := ctrl.DB.Create(assignment).Error; err != nil {
		log.Println("❌ failed to create assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	return helper.JsonCreated(c, "Assignment created successfully", dto.ToAssignmentResponse(assignment))
}

func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.AssignmentModel{})
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		query = query.Where("assignment_department = ?", dept)
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		query = query.Where("assignment_year = ?", year)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		query = query.Where("assignment_subject = ?", subject)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var assignments []model.AssignmentModel
	if err := query.
		Order("assignment_due_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Assignments fetched successfully", dto.ToAssignmentResponseList(assignments), &pagination)
}

func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	return helper.JsonOK(c, "Assignment fetched successfully", dto.ToAssignmentResponse(&assignment))
}

func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	req.Apply(&assignment)
	if err := ctrl.DB.Save(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}

	return helper.JsonUpdated(c, "Assignment updated successfully", dto.ToAssignmentResponse(&assignment))
}

func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	result := ctrl.DB.Delete(&model.AssignmentModel{}, "assignment_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	return helper.JsonDeleted(c, "Assignment deleted successfully", fiber.Map{"assignment_id": id})
}
