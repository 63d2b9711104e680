package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"campushub_backend/internals/features/assistant/dto"
	"campushub_backend/internals/features/assistant/service"
	helper "campushub_backend/internals/helpers"
)

type AssistantController struct {
	Service   *service.AssistantService
	Validator *validator.Validate
}

func NewAssistantController() *AssistantController {
	return &AssistantController{
		Service:   service.NewAssistantService(),
		Validator: validator.New(),
	}
}

func (ctrl *AssistantController) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reply, history, err := ctrl.Service.Ask(c.UserContext(), req.History, req.Prompt)
	if err != nil {
		if err == service.ErrAssistantNotConfigured {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Assistant is not available")
		}
		log.Println("❌ assistant request failed:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Assistant request failed")
	}

	return helper.JsonOK(c, "Assistant replied successfully", dto.ChatResponse{
		Reply:   reply,
		History: history,
	})
}
