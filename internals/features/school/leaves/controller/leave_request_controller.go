// file: internals/features/school/leaves/controller/leave_request_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/school/leaves/dto"
	leaveModel "absenku_backend/internals/features/school/leaves/model"
	"absenku_backend/internals/features/school/leaves/service"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

type LeaveRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.LeaveService
}

func NewLeaveRequestController(db *gorm.DB) *LeaveRequestController {
	return &LeaveRequestController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
	}
}

func (ctrl *LeaveRequestController) ownStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
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

func parseQueryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	d, err := helper.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

/* ===================== SISWA ===================== */

// POST /api/u/leave-requests
func (ctrl *LeaveRequestController) Create(c *fiber.Ctx) error {
	st, err := ctrl.ownStudent(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.LeaveRequestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	start, err := helper.ParseDate(req.LeaveRequestStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := helper.ParseDate(req.LeaveRequestEndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.Create(c.Context(), service.CreateInput{
		StudentID:     st.StudentID,
		Type:          leaveModel.LeaveType(req.LeaveRequestType),
		StartDate:     start,
		EndDate:       end,
		Reason:        req.LeaveRequestReason,
		AttachmentURL: req.LeaveRequestAttachmentURL,
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pengajuan izin dibuat", out)
}

// DELETE /api/u/leave-requests/:id — cancel (hanya pemilik, hanya pending)
func (ctrl *LeaveRequestController) Cancel(c *fiber.Ctx) error {
	st, err := ctrl.ownStudent(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctrl.Service.Cancel(c.Context(), id, st.StudentID); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Pengajuan izin dibatalkan", fiber.Map{"leave_request_id": id})
}

// GET /api/u/leave-requests/me
func (ctrl *LeaveRequestController) MyRequests(c *fiber.Ctx) error {
	st, err := ctrl.ownStudent(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, total, err := ctrl.Service.List(c.Context(), service.ListFilter{StudentID: &st.StudentID}, p)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Pengajuan izin saya", rows, &meta)
}

/* ===================== GURU / ADMIN ===================== */

// GET /api/t/leave-requests?student_id=&status=
func (ctrl *LeaveRequestController) List(c *fiber.Ctx) error {
	var f service.ListFilter
	if s := c.Query("student_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		f.StudentID = &id
	}
	if s := c.Query("status"); s != "" {
		st := leaveModel.LeaveStatus(s)
		switch st {
		case leaveModel.LeaveStatusPending, leaveModel.LeaveStatusApproved, leaveModel.LeaveStatusRejected:
			f.Status = &st
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "status harus pending|approved|rejected")
		}
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, total, err := ctrl.Service.List(c.Context(), f, p)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Daftar pengajuan izin", rows, &meta)
}

// GET /api/t/leave-requests/pending — antrian approval
func (ctrl *LeaveRequestController) Pending(c *fiber.Ctx) error {
	st := leaveModel.LeaveStatusPending
	p := helper.ParseFiber(c, "created_at", "asc", helper.DefaultOpts)
	rows, total, err := ctrl.Service.List(c.Context(), service.ListFilter{Status: &st}, p)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Pengajuan menunggu persetujuan", rows, &meta)
}

// GET /api/t/leave-requests/:id
func (ctrl *LeaveRequestController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	out, err := ctrl.Service.GetByID(c.Context(), id)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail pengajuan izin", out)
}

// PATCH /api/t/leave-requests/:id/approve — approve/reject + materialisasi absensi
func (ctrl *LeaveRequestController) Approve(c *fiber.Ctx) error {
	approverID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req dto.LeaveRequestApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	res, err := ctrl.Service.Approve(c.Context(), service.ApproveInput{
		ID:            id,
		Outcome:       leaveModel.LeaveStatus(req.LeaveRequestStatus),
		ApprovalNotes: req.LeaveRequestApprovalNotes,
		ApproverID:    approverID,
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	msg := "Pengajuan izin diproses"
	if len(res.SkippedDates) > 0 {
		msg = "Pengajuan diproses sebagian; beberapa tanggal sudah hadir"
	}
	return helper.JsonOK(c, msg, res)
}

// GET /api/t/leave-requests/stats?class_id=&start_date=&end_date=
func (ctrl *LeaveRequestController) Stats(c *fiber.Ctx) error {
	var classID *uuid.UUID
	if s := c.Query("class_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		classID = &id
	}
	start, err := parseQueryDate(c, "start_date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := parseQueryDate(c, "end_date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.Stats(c.Context(), classID, start, end)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Statistik pengajuan izin", out)
}
