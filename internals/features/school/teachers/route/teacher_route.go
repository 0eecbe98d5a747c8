// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtrl "absenku_backend/internals/features/school/teachers/controller"
)

// Rute guru/admin (baca)
func TeacherStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherCtrl.NewTeacherController(db)

	g := r.Group("/teachers")
	g.Get("/", ctrl.List)
	g.Get("/by-nip/:nip", ctrl.GetByNIP)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/classes", ctrl.Classes)
}

// Rute admin (kelola)
func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherCtrl.NewTeacherController(db)

	g := r.Group("/teachers")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Deactivate)
	g.Post("/:id/classes", ctrl.AssignClass)
	g.Delete("/:id/classes/:assignment_id", ctrl.UnassignClass)
}
