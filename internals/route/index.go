// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attRoute "absenku_backend/internals/features/school/attendance/route"
	classRoute "absenku_backend/internals/features/school/classes/route"
	leaveRoute "absenku_backend/internals/features/school/leaves/route"
	schedRoute "absenku_backend/internals/features/school/schedules/route"
	studentRoute "absenku_backend/internals/features/school/students/route"
	teacherRoute "absenku_backend/internals/features/school/teachers/route"
	authRoute "absenku_backend/internals/features/users/auth/route"
	userRoute "absenku_backend/internals/features/users/user/route"

	"absenku_backend/internals/constants"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh rute dalam empat lapis akses:
//
//	/api    → publik (login, refresh)
//	/api/u  → semua role login (aksi atas data milik sendiri + baca jadwal/kelas)
//	/api/t  → guru & admin (kelola absensi, approval izin, baca siswa)
//	/api/a  → admin (master data: user, kelas, guru, siswa, jadwal)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	public := app.Group("/api")
	authRoute.AuthPublicRoutes(public, db)

	// ===================== USER (semua role login) =====================
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	authRoute.AuthUserRoutes(user, db)
	userRoute.UserSelfRoutes(user, db)
	attRoute.AttendanceUserRoutes(user, db)
	leaveRoute.LeaveRequestUserRoutes(user, db)
	schedRoute.ScheduleUserRoutes(user, db)
	classRoute.ClassUserRoutes(user, db)

	// ===================== TEACHER (guru & admin) =====================
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("absensi & data sekolah"), constants.StaffRoles...),
	)
	attRoute.AttendanceTeacherRoutes(teacher, db)
	leaveRoute.LeaveRequestTeacherRoutes(teacher, db)
	classRoute.ClassTeacherRoutes(teacher, db)
	teacherRoute.TeacherStaffRoutes(teacher, db)
	studentRoute.StudentStaffRoutes(teacher, db)

	// ===================== ADMIN =====================
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("master data"), constants.AdminOnly...),
	)
	userRoute.UserAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	schedRoute.ScheduleAdminRoutes(admin, db)

	log.Println("[INFO] Routes terpasang: /api, /api/u, /api/t, /api/a")
}
