package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/home/feedback/dto"
	"campushub_backend/internals/features/home/feedback/model"
	helper "campushub_backend/internals/helpers"
)

type FeedbackController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctrl *FeedbackController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	actorID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	feedback := req.ToModel(userID)
	if err := ctrl.DB.Create(feedback).Error; err != nil {
		log.Println("❌ failed to create feedback:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}

	return helper.JsonCreated(c, "Feedback submitted successfully", dto.ToFeedbackResponse(feedback))
}

func (ctrl *FeedbackController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.FeedbackModel{})
	if rating := c.QueryInt("rating"); rating > 0 {
		query = query.Where("feedback_rating = ?", rating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var feedback []model.FeedbackModel
	if err := query.
		Order("feedback_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&feedback).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch feedback")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.Limit, total)
	return helper.JsonList(c, "Feedback fetched successfully", dto.ToFeedbackResponseList(feedback), &pagination)
}

func (ctrl *FeedbackController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid feedback ID")
	}

	result := ctrl.DB.Delete(&model.FeedbackModel{}, "feedback_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Feedback not found")
	}

	return helper.JsonDeleted(c, "Feedback deleted successfully", fiber.Map{"feedback_id": id})
}
