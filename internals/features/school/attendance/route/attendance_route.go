// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "absenku_backend/internals/features/school/attendance/controller"
)

// Rute siswa (semua role login, identitas siswa dari token)
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Post("/check-in", ctrl.CheckIn)
	g.Post("/check-out", ctrl.CheckOut)
	g.Get("/me", ctrl.MyHistory)
}

// Rute guru/admin
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Get("/", ctrl.List)
	g.Post("/mark", ctrl.Mark)
	g.Post("/bulk-mark", ctrl.BulkMark)
	g.Get("/today/:class_id", ctrl.TodayByClass)
	g.Get("/stats", ctrl.Stats)
}
