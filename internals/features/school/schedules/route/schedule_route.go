// file: internals/features/school/schedules/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedCtrl "absenku_backend/internals/features/school/schedules/controller"
)

// Rute baca (semua role login)
func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schedCtrl.NewScheduleController(db)

	g := r.Group("/schedules")
	g.Get("/", ctrl.List)
	g.Get("/today/:class_id", ctrl.TodayByClass)
}

// Rute kelola (admin)
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schedCtrl.NewScheduleController(db)

	g := r.Group("/schedules")
	g.Post("/", ctrl.Create)
	g.Post("/bulk", ctrl.BulkCreate)
	g.Post("/check-conflicts", ctrl.CheckConflicts)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
