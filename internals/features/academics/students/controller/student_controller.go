package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/students/dto"
	"campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateStudentKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// =============================
// ========== CREATE ===========
// =============================
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := req.ToModel()
	if err := ctrl.DB.Create(student).Error; err != nil {
		if isDuplicateStudentKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Registration number or user already registered as a student")
		}
		log.Println("❌ failed to create student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created successfully", dto.ToStudentResponse(student))
}

// =============================
// =========== LIST ============
// =============================
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.StudentModel{})
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		query = query.Where("student_department = ?", dept)
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		query = query.Where("student_year = ?", year)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		query = query.Where("student_course = ?", course)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("student_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("student_name ILIKE ? OR student_registration_no ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := query.
		Order("student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Students fetched successfully", dto.ToStudentResponseList(students), &pagination)
}

// =============================
// ========= GET BY ID =========
// =============================
// Students may only read their own record. Staff can read any record.
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleStudent {
		actorID, ok := c.Locals("user_id").(string)
		if !ok || actorID != student.StudentUserID.String() {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own student record")
		}
	}

	return helper.JsonOK(c, "Student fetched successfully", dto.ToStudentResponse(&student))
}

// Me returns the student record bound to the authenticated user.
func (ctrl *StudentController) Me(c *fiber.Ctx) error {
	actorID, ok := c.Locals("user_id").(string)
	if !ok || actorID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "No student record linked to this account")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return helper.JsonOK(c, "Student fetched successfully", dto.ToStudentResponse(&student))
}

// =============================
// ========== UPDATE ===========
// =============================
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	req.Apply(&student)
	if err := ctrl.DB.Save(&student).Error; err != nil {
		if isDuplicateStudentKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated successfully", dto.ToStudentResponse(&student))
}

// =============================
// ========== DELETE ===========
// =============================
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	result := ctrl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": id})
}

// =============================
// ======= PHOTO UPLOAD ========
// =============================
func (ctrl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	// Students may only change their own photo.
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleStudent {
		actorID, _ := c.Locals("user_id").(string)
		if actorID != student.StudentUserID.String() {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only change your own photo")
		}
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Photo file is required")
	}

	url, err := helper.UploadProfilePhoto("students", fileHeader)
	if err != nil {
		log.Println("❌ failed to upload student photo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload photo")
	}

	if err := ctrl.DB.Model(&student).Update("student_photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo URL")
	}

	return helper.JsonUpdated(c, "Photo uploaded successfully", fiber.Map{"student_photo_url": url})
}

// =============================
// ==== REGISTRATION REVIEW ====
// =============================
func (ctrl *StudentController) Approve(c *fiber.Ctx) error {
	return ctrl.review(c, model.StudentStatusApproved, "Student registration approved")
}

func (ctrl *StudentController) Reject(c *fiber.Ctx) error {
	return ctrl.review(c, model.StudentStatusRejected, "Student registration rejected")
}

func (ctrl *StudentController) review(c *fiber.Ctx, status model.StudentStatus, message string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if student.StudentStatus != model.StudentStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Registration has already been reviewed")
	}

	student.StudentStatus = status
	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration status")
	}

	return helper.JsonUpdated(c, message, dto.ToStudentResponse(&student))
}
