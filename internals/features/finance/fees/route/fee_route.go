package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	feeCtrl "campushub_backend/internals/features/finance/fees/controller"
	permCtrl "campushub_backend/internals/features/users/permissions/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

// FeeRoutes mounts the authenticated fee endpoints. The payment webhook
// is mounted separately (see FeeWebhookRoutes) because the gateway calls
// it without a token.
func FeeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)

	// =====================
	// Fees
	// =====================
	group := r.Group("/fees")

	group.Get("/me", ctrl.MyFees)
	group.Get("/:id", ctrl.GetByID)
	group.Post("/:id/pay", ctrl.Pay)

	manage := group.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("fees"), constants.StaffRoles...),
		permCtrl.RequireCapability(db, constants.CapManageFees, constants.RoleAdmin, constants.RolePrincipal),
	)
	manage.Get("/", ctrl.List)
	manage.Post("/", ctrl.Create)
	manage.Put("/:id", ctrl.Update)
	manage.Delete("/:id", ctrl.Delete)
	manage.Post("/:id/payments", ctrl.RecordPayment)
}

// FeeWebhookRoutes mounts the unauthenticated payment gateway callback.
func FeeWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)
	r.Post("/fees/payment-notification", ctrl.HandlePaymentNotification)
}
