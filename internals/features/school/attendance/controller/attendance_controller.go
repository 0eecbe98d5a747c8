// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/school/attendance/dto"
	attModel "absenku_backend/internals/features/school/attendance/model"
	"absenku_backend/internals/features/school/attendance/service"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
	}
}

// Siswa di-resolve dari user login — bukan dari body request
// (anti titip-absen atas nama siswa lain).
func (ctrl *AttendanceController) ownStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var st studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_user_id = ? AND student_is_active = TRUE", userID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Profil siswa untuk akun ini tidak ditemukan")
		}
		return nil, err
	}
	return &st, nil
}

func parseOptDate(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return helper.SchoolToday(), nil
	}
	return helper.ParseDate(*s)
}

/* ===================== CHECK-IN / CHECK-OUT ===================== */

// POST /api/u/attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	st, err := ctrl.ownStudent(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	date, err := parseOptDate(req.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.Service.CheckIn(c.Context(), st.StudentID, req.AttendanceClassID, date)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Check-in berhasil", rec)
}

// POST /api/u/attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	st, err := ctrl.ownStudent(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	date, err := parseOptDate(req.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.Service.CheckOut(c.Context(), st.StudentID, date)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Check-out berhasil", rec)
}

// GET /api/u/attendance/me — riwayat absensi siswa login
func (ctrl *AttendanceController) MyHistory(c *fiber.Ctx) error {
	st, err := ctrl.ownStudent(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	f, err := parseListFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	f.StudentID = &st.StudentID

	p := helper.ParseFiber(c, "attendance_date", "asc", helper.DefaultOpts)
	rows, total, err := ctrl.Service.List(c.Context(), f, p)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Riwayat absensi", rows, &meta)
}

/* ===================== MARK / BULK MARK ===================== */

// POST /api/t/attendance/mark
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	date, err := helper.ParseDate(req.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.Service.Mark(c.Context(), service.MarkInput{
		StudentID: req.AttendanceStudentID,
		ClassID:   req.AttendanceClassID,
		Date:      date,
		Status:    attModel.AttendanceStatus(req.AttendanceStatus),
		Notes:     req.AttendanceNotes,
		ActorID:   actorID,
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Absensi ditandai", rec)
}

// POST /api/t/attendance/bulk-mark — satu kelas sekali submit, atomik
func (ctrl *AttendanceController) BulkMark(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.BulkMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	date, err := helper.ParseDate(req.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entries := make([]service.BulkMarkEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, service.BulkMarkEntry{
			StudentID: e.AttendanceStudentID,
			Status:    attModel.AttendanceStatus(e.AttendanceStatus),
			Notes:     e.AttendanceNotes,
		})
	}

	rows, err := ctrl.Service.BulkMark(c.Context(), req.AttendanceClassID, date, entries, actorID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Absensi kelas tersimpan", rows)
}

/* ===================== READS (guru/admin) ===================== */

func parseListFilter(c *fiber.Ctx) (service.ListFilter, error) {
	var f service.ListFilter
	if s := c.Query("student_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, errors.New("student_id tidak valid")
		}
		f.StudentID = &id
	}
	if s := c.Query("class_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, errors.New("class_id tidak valid")
		}
		f.ClassID = &id
	}
	if s := c.Query("start_date"); s != "" {
		d, err := helper.ParseDate(s)
		if err != nil {
			return f, err
		}
		f.StartDate = &d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := helper.ParseDate(s)
		if err != nil {
			return f, err
		}
		f.EndDate = &d
	}
	return f, nil
}

// GET /api/t/attendance
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	f, err := parseListFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ParseFiber(c, "attendance_date", "asc", helper.DefaultOpts)

	rows, total, err := ctrl.Service.List(c.Context(), f, p)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Daftar absensi", rows, &meta)
}

// GET /api/t/attendance/today/:class_id — roster harian kelas
func (ctrl *AttendanceController) TodayByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	rows, err := ctrl.Service.TodayByClass(c.Context(), classID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Absensi hari ini", rows)
}

// GET /api/t/attendance/stats?class_id=&start_date=&end_date=
func (ctrl *AttendanceController) Stats(c *fiber.Ctx) error {
	f, err := parseListFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	stats, err := ctrl.Service.Stats(c.Context(), f.ClassID, f.StartDate, f.EndDate)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Statistik absensi", stats)
}
