package route

import (
	"github.com/gofiber/fiber/v2"

	assistantCtrl "campushub_backend/internals/features/assistant/controller"
)

func AssistantRoutes(r fiber.Router) {
	ctrl := assistantCtrl.NewAssistantController()

	// =====================
	// Campus assistant
	// =====================
	r.Post("/assistant/chat", ctrl.Chat)
}
