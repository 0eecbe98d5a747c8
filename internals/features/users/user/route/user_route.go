// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "absenku_backend/internals/features/users/user/controller"
)

// Rute self-service (semua role login)
func UserSelfRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	g := r.Group("/users")
	g.Patch("/change-password", ctrl.ChangePassword)
}

// Rute admin
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	g := r.Group("/users")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/reset-password", ctrl.ResetPassword)
	g.Delete("/:id", ctrl.Deactivate)
}
