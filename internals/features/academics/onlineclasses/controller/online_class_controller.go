package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/onlineclasses/dto"
	"campushub_backend/internals/features/academics/onlineclasses/model"
	studentModel "campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
)

type OnlineClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOnlineClassController(db *gorm.DB) *OnlineClassController {
	return &OnlineClassController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctrl *OnlineClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateOnlineClassRequest
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

	class := req.ToModel(createdBy)
	if err := ctrl.DB.Create(class).Error; err != nil {
		log.Println("❌ failed to create online class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create online class")
	}

	return helper.JsonCreated(c, "Online class scheduled successfully", dto.ToOnlineClassResponse(class))
}

func (ctrl *OnlineClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.OnlineClassModel{})
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		query = query.Where("online_class_department = ?", dept)
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		query = query.Where("online_class_year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count online classes")
	}

	var classes []model.OnlineClassModel
	if err := query.
		Order("online_class_scheduled_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch online classes")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Online classes fetched successfully", dto.ToOnlineClassResponseList(classes), &pagination)
}

// Upcoming lists the classes still ahead of now. Students are scoped to
// their own department and year automatically.
func (ctrl *OnlineClassController) Upcoming(c *fiber.Ctx) error {
	query := ctrl.DB.
		Where("online_class_scheduled_at >= ?", time.Now()).
		Order("online_class_scheduled_at ASC").
		Limit(50)

	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleStudent {
		actorID, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(actorID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		var student studentModel.StudentModel
		if err := ctrl.DB.Select("student_department", "student_year").
			First(&student, "student_user_id = ?", userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "No student record linked to this account")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
		}
		query = query.Where("online_class_department = ?", student.StudentDepartment)
		if student.StudentYear != "" {
			query = query.Where("online_class_year = ? OR online_class_year = ''", student.StudentYear)
		}
	}

	var classes []model.OnlineClassModel
	if err := query.Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch online classes")
	}

	return helper.JsonOK(c, "Upcoming online classes fetched successfully", dto.ToOnlineClassResponseList(classes))
}

func (ctrl *OnlineClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid online class ID")
	}

	var req dto.UpdateOnlineClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class model.OnlineClassModel
	if err := ctrl.DB.First(&class, "online_class_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Online class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch online class")
	}

	req.Apply(&class)
	if err := ctrl.DB.Save(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update online class")
	}

	return helper.JsonUpdated(c, "Online class updated successfully", dto.ToOnlineClassResponse(&class))
}

func (ctrl *OnlineClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid online class ID")
	}

	result := ctrl.DB.Delete(&model.OnlineClassModel{}, "online_class_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete online class")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Online class not found")
	}

	return helper.JsonDeleted(c, "Online class deleted successfully", fiber.Map{"online_class_id": id})
}
