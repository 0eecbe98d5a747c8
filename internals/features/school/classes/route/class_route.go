// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "absenku_backend/internals/features/school/classes/controller"
)

// Rute baca (semua role login)
func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	g := r.Group("/classes")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}

// Rute guru/admin
func ClassTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	g := r.Group("/classes")
	g.Get("/:id/students", ctrl.Students)
}

// Rute admin
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	g := r.Group("/classes")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Deactivate)
}
