// file: internals/features/school/leaves/route/leave_request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveCtrl "absenku_backend/internals/features/school/leaves/controller"
)

// Rute siswa
func LeaveRequestUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := leaveCtrl.NewLeaveRequestController(db)

	g := r.Group("/leave-requests")
	g.Post("/", ctrl.Create)
	g.Get("/me", ctrl.MyRequests)
	g.Delete("/:id", ctrl.Cancel)
}

// Rute guru/admin
func LeaveRequestTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := leaveCtrl.NewLeaveRequestController(db)

	g := r.Group("/leave-requests")
	g.Get("/", ctrl.List)
	g.Get("/pending", ctrl.Pending)
	g.Get("/stats", ctrl.Stats)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id/approve", ctrl.Approve)
}
