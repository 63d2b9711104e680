package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth endpoints. Refresh works off the
// cookie alone, so it stays public as well.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := app.Group("/api/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	group.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthProtectedRoutes mounts the endpoints that need a valid token.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := r.Group("/auth")
	group.Post("/logout", ctrl.Logout)
	group.Post("/change-password", ctrl.ChangePassword)
	group.Post("/reset-password", ctrl.ResetPassword)
	group.Get("/me", ctrl.Me)
}
