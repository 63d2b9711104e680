package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "campushub_backend/internals/features/users/auth/route"
	permRoute "campushub_backend/internals/features/users/permissions/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}

func UserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthProtectedRoutes(r, db)
	permRoute.PermissionRoutes(r, db)
}
