package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/faculty/dto"
	"campushub_backend/internals/features/academics/faculty/model"
	helper "campushub_backend/internals/helpers"
)

type FacultyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateFacultyKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (ctrl *FacultyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	faculty := req.ToModel()
	if err := ctrl.DB.Create(faculty).Error; err != nil {
		if isDuplicateFacultyKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User already registered as faculty")
		}
		log.Println("❌ failed to create faculty:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create faculty")
	}

	return helper.JsonCreated(c, "Faculty created successfully", dto.ToFacultyResponse(faculty))
}

func (ctrl *FacultyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.FacultyModel{})
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		query = query.Where("faculty_department = ?", dept)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("faculty_name ILIKE ? OR faculty_subjects ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count faculty")
	}

	var faculty []model.FacultyModel
	if err := query.
		Order("faculty_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&faculty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Faculty fetched successfully", dto.ToFacultyResponseList(faculty), &pagination)
}

func (ctrl *FacultyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	var faculty model.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	return helper.JsonOK(c, "Faculty fetched successfully", dto.ToFacultyResponse(&faculty))
}

func (ctrl *FacultyController) Me(c *fiber.Ctx) error {
	actorID, ok := c.Locals("user_id").(string)
	if !ok || actorID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var faculty model.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "No faculty record linked to this account")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	return helper.JsonOK(c, "Faculty fetched successfully", dto.ToFacultyResponse(&faculty))
}

func (ctrl *FacultyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	var req dto.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var faculty model.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	req.Apply(&faculty)
	if err := ctrl.DB.Save(&faculty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update faculty")
	}

	return helper.JsonUpdated(c, "Faculty updated successfully", dto.ToFacultyResponse(&faculty))
}

func (ctrl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	result := ctrl.DB.Delete(&model.FacultyModel{}, "faculty_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete faculty")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}

	return helper.JsonDeleted(c, "Faculty deleted successfully", fiber.Map{"faculty_id": id})
}

func (ctrl *FacultyController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID")
	}

	var faculty model.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Photo file is required")
	}

	url, err := helper.UploadProfilePhoto("faculty", fileHeader)
	if err != nil {
		log.Println("❌ failed to upload faculty photo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload photo")
	}

	if err := ctrl.DB.Model(&faculty).Update("faculty_photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo URL")
	}

	return helper.JsonUpdated(c, "Photo uploaded successfully", fiber.Map{"faculty_photo_url": url})
}
