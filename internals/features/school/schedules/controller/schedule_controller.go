// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/school/schedules/dto"
	"absenku_backend/internals/features/school/schedules/service"
	helper "absenku_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
	}
}

// Bentrok jadwal = 409 + daftar jadwal yang bentrok di payload,
// supaya klien bisa menampilkan slot mana yang menghalangi.
func writeScheduleErr(c *fiber.Ctx, err error) error {
	var ce *service.ConflictError
	if errors.As(err, &ce) {
		return helper.JsonErrorWithData(c, fiber.StatusConflict, "Jadwal bentrok dengan jadwal aktif lain", fiber.Map{
			"conflicts": ce.Conflicts,
		})
	}
	return helper.WritePGError(c, err)
}

/* ===================== MUTATIONS (admin) ===================== */

// POST /api/a/schedules
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.ScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	out, err := ctrl.Service.Create(c.Context(), req.ToInput())
	if err != nil {
		return writeScheduleErr(c, err)
	}
	return helper.JsonCreated(c, "Jadwal dibuat", out)
}

// POST /api/a/schedules/bulk — all-or-nothing
func (ctrl *ScheduleController) BulkCreate(c *fiber.Ctx) error {
	var req dto.ScheduleBulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	ins := make([]service.ScheduleInput, 0, len(req.Schedules))
	for _, s := range req.Schedules {
		ins = append(ins, s.ToInput())
	}
	out, err := ctrl.Service.BulkCreate(c.Context(), ins)
	if err != nil {
		return writeScheduleErr(c, err)
	}
	return helper.JsonCreated(c, "Jadwal batch dibuat", out)
}

// PATCH /api/a/schedules/:id
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var req dto.ScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	out, err := ctrl.Service.Update(c.Context(), id, req.ToUpdate())
	if err != nil {
		return writeScheduleErr(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal diperbarui", out)
}

// DELETE /api/a/schedules/:id — nonaktifkan, histori tetap
func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	out, err := ctrl.Service.Deactivate(c.Context(), id)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Jadwal dinonaktifkan", out)
}

// POST /api/a/schedules/check-conflicts — dry run tanpa menyimpan
func (ctrl *ScheduleController) CheckConflicts(c *fiber.Ctx) error {
	var req dto.ScheduleConflictCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	conflicts, err := ctrl.Service.CheckConflicts(c.Context(), service.ConflictQuery{
		ClassID:      req.ScheduleClassID,
		TeacherID:    req.ScheduleTeacherID,
		DayOfWeek:    req.ScheduleDayOfWeek,
		StartTime:    req.ScheduleStartTime,
		EndTime:      req.ScheduleEndTime,
		AcademicYear: req.ScheduleAcademicYear,
		ExcludeID:    req.ExcludeScheduleID,
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Hasil cek bentrok", fiber.Map{
		"has_conflict": len(conflicts) > 0,
		"conflicts":    conflicts,
	})
}

/* ===================== READS (semua role login) ===================== */

// GET /api/u/schedules?class_id=&teacher_id=&academic_year=&include_inactive=
func (ctrl *ScheduleController) List(c *fiber.Ctx) error {
	var f service.ReadFilter
	if s := c.Query("class_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		f.ClassID = &id
	}
	if s := c.Query("teacher_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		f.TeacherID = &id
	}
	if s := c.Query("academic_year"); s != "" {
		// Query value menunjuk buffer internal Fiber — salin sebelum disimpan
		year := utils.CopyString(s)
		f.AcademicYear = &year
	}
	f.IncludeInactive = c.QueryBool("include_inactive") && helper.IsAdmin(c)

	rows, err := ctrl.Service.List(c.Context(), f)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar jadwal", rows)
}

// GET /api/u/schedules/today/:class_id
func (ctrl *ScheduleController) TodayByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	rows, err := ctrl.Service.Today(c.Context(), classID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Jadwal hari ini", rows)
}
