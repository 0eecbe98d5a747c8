// file: internals/features/school/leaves/service/leave_service.go
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "absenku_backend/internals/features/school/attendance/model"
	attService "absenku_backend/internals/features/school/attendance/service"
	leaveModel "absenku_backend/internals/features/school/leaves/model"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

/* =========================
   Service & known conditions
   ========================= */

type LeaveService struct {
	DB  *gorm.DB
	Att *attService.AttendanceService
}

func New(db *gorm.DB) *LeaveService {
	return &LeaveService{DB: db, Att: attService.New(db)}
}

var (
	ErrLeaveNotFound    = fiber.NewError(http.StatusNotFound, "Pengajuan izin tidak ditemukan")
	ErrAlreadyResolved  = fiber.NewError(http.StatusConflict, "Pengajuan izin sudah diproses")
	ErrNotOwner         = fiber.NewError(http.StatusForbidden, "Bukan pengajuan milik siswa ini")
	ErrNotPending       = fiber.NewError(http.StatusConflict, "Hanya pengajuan berstatus pending yang bisa dibatalkan")
	ErrInvalidDateRange = fiber.NewError(http.StatusBadRequest, "end_date harus >= start_date")
)

/* =========================
   Create / Cancel
   ========================= */

type CreateInput struct {
	StudentID     uuid.UUID
	Type          leaveModel.LeaveType
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	AttachmentURL *string
}

func (s *LeaveService) Create(ctx context.Context, in CreateInput) (*leaveModel.LeaveRequestModel, error) {
	if !in.Type.Valid() {
		return nil, fiber.NewError(http.StatusBadRequest, "jenis izin harus 'izin' atau 'sakit'")
	}
	start := helper.DateOnly(in.StartDate)
	end := helper.DateOnly(in.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	var st studentModel.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_id = ? AND student_is_active = TRUE", in.StudentID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}

	req := leaveModel.LeaveRequestModel{
		LeaveRequestStudentID:     in.StudentID,
		LeaveRequestType:          in.Type,
		LeaveRequestStartDate:     start,
		LeaveRequestEndDate:       end,
		LeaveRequestReason:        in.Reason,
		LeaveRequestAttachmentURL: in.AttachmentURL,
		LeaveRequestStatus:        leaveModel.LeaveStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// Cancel: hanya pemilik, hanya saat masih pending. Soft delete.
func (s *LeaveService) Cancel(ctx context.Context, id, studentID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req leaveModel.LeaveRequestModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("leave_request_id = ?", id).
			First(&req).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeaveNotFound
			}
			return err
		}
		if req.LeaveRequestStudentID != studentID {
			return ErrNotOwner
		}
		if req.LeaveRequestStatus != leaveModel.LeaveStatusPending {
			return ErrNotPending
		}
		return tx.Delete(&req).Error
	})
}

/* =========================
   Approve / Reject
   ========================= */

type ApproveInput struct {
	ID            uuid.UUID
	Outcome       leaveModel.LeaveStatus // approved | rejected
	ApprovalNotes *string
	ApproverID    uuid.UUID // users.user_id guru/admin
}

type ApproveResult struct {
	Request *leaveModel.LeaveRequestModel `json:"request"`
	// Tanggal yang dilewati karena sudah hadir (partial materialization)
	SkippedDates []string `json:"skipped_dates,omitempty"`
	CreatedCount int      `json:"created_count"`
	// true kalau pengajuan sudah resolved dengan outcome yang sama (idempoten)
	AlreadyResolved bool `json:"already_resolved,omitempty"`
}

// Approve memutuskan pengajuan dan, saat approved, materialisasi record
// absensi untuk setiap tanggal di rentang — satu transaksi atomik.
// Hari yang sudah hadir dilewati dan dilaporkan, bukan menggagalkan approval.
func (s *LeaveService) Approve(ctx context.Context, in ApproveInput) (*ApproveResult, error) {
	if in.Outcome != leaveModel.LeaveStatusApproved && in.Outcome != leaveModel.LeaveStatusRejected {
		return nil, fiber.NewError(http.StatusBadRequest, "status harus 'approved' atau 'rejected'")
	}
	now := helper.SchoolNow()

	var result ApproveResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req leaveModel.LeaveRequestModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("leave_request_id = ?", in.ID).
			First(&req).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeaveNotFound
			}
			return err
		}

		if req.LeaveRequestStatus != leaveModel.LeaveStatusPending {
			// idempoten: outcome sama → laporkan resolusi yang ada
			if req.LeaveRequestStatus == in.Outcome {
				result = ApproveResult{Request: &req, AlreadyResolved: true}
				return nil
			}
			return ErrAlreadyResolved
		}

		req.LeaveRequestStatus = in.Outcome
		req.LeaveRequestApprovedBy = &in.ApproverID
		req.LeaveRequestApprovedAt = &now
		req.LeaveRequestApprovalNotes = in.ApprovalNotes

		if in.Outcome == leaveModel.LeaveStatusApproved {
			var st studentModel.StudentModel
			if err := tx.Where("student_id = ? AND student_is_active = TRUE", req.LeaveRequestStudentID).
				First(&st).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(http.StatusNotFound, "Siswa tidak ditemukan")
				}
				return err
			}

			status := MaterializedStatus(req.LeaveRequestType)
			dates, err := helper.DatesInRange(req.LeaveRequestStartDate, req.LeaveRequestEndDate)
			if err != nil {
				return fiber.NewError(http.StatusBadRequest, err.Error())
			}

			outcomes := make([]MaterializationOutcome, 0, len(dates))
			for _, d := range dates {
				_, wasSkipped, err := s.Att.UpsertExcusedTx(tx, attService.MarkInput{
					StudentID: st.StudentID,
					ClassID:   st.StudentClassID,
					Date:      d,
					Status:    status,
					Notes:     &req.LeaveRequestReason,
					ActorID:   in.ApproverID,
				}, now)
				if err != nil {
					return err
				}
				outcomes = append(outcomes, MaterializationOutcome{Date: d, Skipped: wasSkipped})
			}
			created, skipped := SummarizeMaterialization(outcomes)

			req.LeaveRequestMaterialization = datatypes.JSONMap{
				"created":       created,
				"skipped_dates": skipped,
			}
			result.SkippedDates = skipped
			result.CreatedCount = created
		}

		if err := tx.Save(&req).Error; err != nil {
			return err
		}
		result.Request = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MaterializedStatus: tipe izin → status absensi yang dimaterialisasi.
func MaterializedStatus(t leaveModel.LeaveType) attModel.AttendanceStatus {
	if t == leaveModel.LeaveTypeSakit {
		return attModel.AttendanceSakit
	}
	return attModel.AttendanceIzin
}

// MaterializationOutcome: nasib satu tanggal saat approval — ditulis, atau
// dilewati karena sudah tercatat hadir.
type MaterializationOutcome struct {
	Date    time.Time
	Skipped bool
}

// SummarizeMaterialization menurunkan audit approval (jumlah yang ditulis +
// daftar tanggal yang dilewati, format YYYY-MM-DD) dari nasib per tanggal.
func SummarizeMaterialization(outcomes []MaterializationOutcome) (created int, skipped []string) {
	for _, o := range outcomes {
		if o.Skipped {
			skipped = append(skipped, o.Date.Format("2006-01-02"))
		} else {
			created++
		}
	}
	return created, skipped
}

/* =========================
   Listing & stats
   ========================= */

type ListFilter struct {
	StudentID *uuid.UUID
	Status    *leaveModel.LeaveStatus
}

func (s *LeaveService) List(ctx context.Context, f ListFilter, p helper.Params) ([]leaveModel.LeaveRequestModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&leaveModel.LeaveRequestModel{})
	if f.StudentID != nil {
		q = q.Where("leave_request_student_id = ?", *f.StudentID)
	}
	if f.Status != nil {
		q = q.Where("leave_request_status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []leaveModel.LeaveRequestModel
	if err := q.Order("leave_request_created_at DESC").
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *LeaveService) GetByID(ctx context.Context, id uuid.UUID) (*leaveModel.LeaveRequestModel, error) {
	var req leaveModel.LeaveRequestModel
	if err := s.DB.WithContext(ctx).
		Where("leave_request_id = ?", id).
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	return &req, nil
}

type LeaveStats struct {
	TotalRequests    int64            `json:"total_requests"`
	ApprovedRequests int64            `json:"approved_requests"`
	RejectedRequests int64            `json:"rejected_requests"`
	PendingRequests  int64            `json:"pending_requests"`
	TypeBreakdown    map[string]int64 `json:"leave_type_breakdown"`
}

func (s *LeaveService) Stats(ctx context.Context, classID *uuid.UUID, start, end *time.Time) (*LeaveStats, error) {
	q := s.DB.WithContext(ctx).Model(&leaveModel.LeaveRequestModel{})
	if classID != nil {
		q = q.Joins("JOIN students s ON s.student_id = leave_requests.leave_request_student_id").
			Where("s.student_class_id = ?", *classID)
	}
	if start != nil {
		q = q.Where("leave_request_start_date >= ?", helper.DateOnly(*start))
	}
	if end != nil {
		q = q.Where("leave_request_end_date <= ?", helper.DateOnly(*end))
	}

	type row struct {
		Status leaveModel.LeaveStatus
		Type   leaveModel.LeaveType
		N      int64
	}
	var rows []row
	if err := q.
		Select("leave_request_status AS status, leave_request_type AS type, COUNT(*) AS n").
		Group("leave_request_status, leave_request_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := LeaveStats{TypeBreakdown: map[string]int64{}}
	for _, r := range rows {
		out.TotalRequests += r.N
		switch r.Status {
		case leaveModel.LeaveStatusApproved:
			out.ApprovedRequests += r.N
		case leaveModel.LeaveStatusRejected:
			out.RejectedRequests += r.N
		case leaveModel.LeaveStatusPending:
			out.PendingRequests += r.N
		}
		out.TypeBreakdown[string(r.Type)] += r.N
	}
	return &out, nil
}
