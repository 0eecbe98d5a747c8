// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtrl "absenku_backend/internals/features/school/students/controller"
)

// Rute guru/admin (baca)
func StudentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/by-nisn/:nisn", ctrl.GetByNISN)
	g.Get("/:id", ctrl.GetByID)
}

// Rute admin (kelola)
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/transfer", ctrl.Transfer)
	g.Delete("/:id", ctrl.Deactivate)
}
