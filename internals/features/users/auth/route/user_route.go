// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "absenku_backend/internals/features/users/auth/controller"
	"absenku_backend/internals/middlewares"
)

// Rute publik (login/refresh, di bawah rate limiter khusus login)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/refresh", ctrl.Refresh)
}

// Rute setelah login
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	g := r.Group("/auth")
	g.Get("/me", ctrl.Me)
	g.Post("/logout", ctrl.Logout)
}
