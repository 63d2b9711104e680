package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	studentModel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/home/notifications/dto"
	"campushub_backend/internals/features/home/notifications/model"
	"campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:        db,
		Validator: validator.New(),
	}
}

// recipientFromContext builds the matcher's view of the caller. For
// students the department/year come from their student record.
func (ctrl *NotificationController) recipientFromContext(c *fiber.Ctx) (service.Recipient, error) {
	actorID, ok := c.Locals("user_id").(string)
	if !ok || actorID == "" {
		return service.Recipient{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return service.Recipient{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	role, _ := c.Locals("userRole").(string)
	recipient := service.Recipient{ID: userID, Role: role}

	if role == constants.RoleStudent {
		var student studentModel.StudentModel
		err := ctrl.DB.Select("student_department", "student_year").
			First(&student, "student_user_id = ?", userID).Error
		if err == nil {
			recipient.Department = student.StudentDepartment
			recipient.Year = student.StudentYear
		} else if err != gorm.ErrRecordNotFound {
			return service.Recipient{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve recipient profile")
		}
	}

	return recipient, nil
}

// =============================
// ========== CREATE ===========
// =============================
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var createdBy *uuid.UUID
	if actorID, ok := c.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(actorID); err == nil {
			createdBy = &parsed
		}
	}

	notification := req.ToModel(createdBy)
	if err := ctrl.DB.Create(notification).Error; err != nil {
		log.Println("❌ failed to create notification:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}

	return helper.JsonCreated(c, "Notification sent successfully", dto.ToNotificationResponse(notification))
}

// =============================
// ======== LIST MINE ==========
// =============================
// Returns the notifications visible to the caller: direct ones plus the
// broadcasts whose targeting matches their profile.
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	recipient, err := ctrl.recipientFromContext(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve recipient profile")
	}

	var candidates []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ? OR notification_user_id IS NULL", recipient.ID).
		Order("notification_created_at DESC").
		Limit(200).
		Find(&candidates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	visible := service.FilterVisible(candidates, recipient)
	return helper.JsonOK(c, "Notifications fetched successfully", dto.ToNotificationResponseList(visible))
}

// =============================
// ========= LIST ALL ==========
// =============================
func (ctrl *NotificationController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.NotificationModel{})
	if role := c.Query("target_role"); role != "" {
		query = query.Where("notification_target_role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifications []model.NotificationModel
	if err := query.
		Order("notification_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Notifications fetched successfully", dto.ToNotificationResponseList(notifications), &pagination)
}

// =============================
// ========= MARK READ =========
// =============================
// Only direct notifications carry per-user read state, so only the
// addressee may flip it.
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	actorID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var notification model.NotificationModel
	if err := ctrl.DB.First(&notification, "notification_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification")
	}

	if notification.NotificationUserID == nil || *notification.NotificationUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the addressee can mark this notification as read")
	}

	if err := ctrl.DB.Model(&notification).Update("notification_is_read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}

	notification.NotificationIsRead = true
	return helper.JsonUpdated(c, "Notification marked as read", dto.ToNotificationResponse(&notification))
}

// =============================
// ========== DELETE ===========
// =============================
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	result := ctrl.DB.Delete(&model.NotificationModel{}, "notification_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonDeleted(c, "Notification deleted successfully", fiber.Map{"notification_id": id})
}
