package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "campushub_backend/internals/features/finance/fees/route"
)

func FinanceRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.FeeRoutes(r, db)
}

// FinanceWebhookRoutes carries the payment gateway callback; mounted on
// the public API group.
func FinanceWebhookRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.FeeWebhookRoutes(r, db)
}
