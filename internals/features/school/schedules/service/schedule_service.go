// file: internals/features/school/schedules/service/schedule_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "absenku_backend/internals/features/school/schedules/model"
	helper "absenku_backend/internals/helpers"
)

/* =========================
   Service & known conditions
   ========================= */

type ScheduleService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

var ErrScheduleNotFound = fiber.NewError(http.StatusNotFound, "Jadwal tidak ditemukan")

// ConflictError membawa daftar jadwal yang bentrok supaya caller bisa
// menampilkannya, bukan sekadar pesan.
type ConflictError struct {
	Conflicts []scheduleModel.ScheduleModel
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bentrok dengan %d jadwal aktif", len(e.Conflicts))
}

/* =========================
   Overlap & validation
   ========================= */

// Overlaps: interval setengah-terbuka — batas yang bersentuhan
// (08:00–09:00 vs 09:00–10:00) TIDAK bentrok. "HH:mm" zero-padded
// sehingga perbandingan string = perbandingan jam.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

type ScheduleInput struct {
	ClassID      uuid.UUID
	DayOfWeek    string
	StartTime    string
	EndTime      string
	Subject      string
	TeacherID    *uuid.UUID
	AcademicYear string
}

func (in *ScheduleInput) Validate() error {
	in.DayOfWeek = strings.ToLower(strings.TrimSpace(in.DayOfWeek))
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	if !helper.IsValidDayName(in.DayOfWeek) {
		return fiber.NewError(http.StatusBadRequest, fmt.Sprintf("day_of_week tidak dikenal: %q", in.DayOfWeek))
	}
	if !helper.IsValidClockTime(in.StartTime) || !helper.IsValidClockTime(in.EndTime) {
		return fiber.NewError(http.StatusBadRequest, "start_time/end_time harus format HH:mm")
	}
	if in.EndTime <= in.StartTime {
		return fiber.NewError(http.StatusBadRequest, "end_time harus setelah start_time")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return fiber.NewError(http.StatusBadRequest, "subject wajib diisi")
	}
	if strings.TrimSpace(in.AcademicYear) == "" {
		return fiber.NewError(http.StatusBadRequest, "academic_year wajib diisi")
	}
	return nil
}

/* =========================
   Conflict checking
   ========================= */

type ConflictQuery struct {
	ClassID      uuid.UUID
	TeacherID    *uuid.UUID
	DayOfWeek    string
	StartTime    string
	EndTime      string
	AcademicYear string
	ExcludeID    *uuid.UUID
}

// CheckConflicts menjalankan dua pemeriksaan independen — level kelas dan
// (kalau ada guru) level guru — lalu menggabungkan hasilnya.
// Hanya jadwal aktif tahun ajaran yang sama yang diperiksa.
func (s *ScheduleService) CheckConflicts(ctx context.Context, q ConflictQuery) ([]scheduleModel.ScheduleModel, error) {
	return s.checkConflictsTx(s.DB.WithContext(ctx), q)
}

func (s *ScheduleService) checkConflictsTx(tx *gorm.DB, q ConflictQuery) ([]scheduleModel.ScheduleModel, error) {
	base := func() *gorm.DB {
		qq := tx.Model(&scheduleModel.ScheduleModel{}).
			Where("schedule_is_active = TRUE").
			Where("schedule_academic_year = ?", q.AcademicYear).
			Where("schedule_day_of_week = ?", q.DayOfWeek).
			// overlap setengah-terbuka: start_a < end_b AND start_b < end_a
			Where("schedule_start_time < ? AND ? < schedule_end_time", q.EndTime, q.StartTime)
		if q.ExcludeID != nil {
			qq = qq.Where("schedule_id <> ?", *q.ExcludeID)
		}
		return qq
	}

	var classHits []scheduleModel.ScheduleModel
	if err := base().Where("schedule_class_id = ?", q.ClassID).Find(&classHits).Error; err != nil {
		return nil, err
	}

	var teacherHits []scheduleModel.ScheduleModel
	if q.TeacherID != nil {
		if err := base().Where("schedule_teacher_id = ?", *q.TeacherID).Find(&teacherHits).Error; err != nil {
			return nil, err
		}
	}

	// union dedupe by id
	seen := make(map[uuid.UUID]struct{}, len(classHits))
	out := make([]scheduleModel.ScheduleModel, 0, len(classHits)+len(teacherHits))
	for _, h := range classHits {
		seen[h.ScheduleID] = struct{}{}
		out = append(out, h)
	}
	for _, h := range teacherHits {
		if _, ok := seen[h.ScheduleID]; !ok {
			out = append(out, h)
		}
	}
	return out, nil
}

/* =========================
   Mutations
   ========================= */

func (s *ScheduleService) Create(ctx context.Context, in ScheduleInput) (*scheduleModel.ScheduleModel, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out scheduleModel.ScheduleModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conflicts, err := s.checkConflictsTx(tx, ConflictQuery{
			ClassID:      in.ClassID,
			TeacherID:    in.TeacherID,
			DayOfWeek:    in.DayOfWeek,
			StartTime:    in.StartTime,
			EndTime:      in.EndTime,
			AcademicYear: in.AcademicYear,
		})
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		out = scheduleModel.ScheduleModel{
			ScheduleClassID:      in.ClassID,
			ScheduleDayOfWeek:    in.DayOfWeek,
			ScheduleStartTime:    in.StartTime,
			ScheduleEndTime:      in.EndTime,
			ScheduleSubject:      in.Subject,
			ScheduleTeacherID:    in.TeacherID,
			ScheduleAcademicYear: in.AcademicYear,
			ScheduleIsActive:     true,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ScheduleUpdate struct {
	ClassID   *uuid.UUID
	DayOfWeek *string
	StartTime *string
	EndTime   *string
	Subject   *string
	TeacherID *uuid.UUID
	// ClearTeacher melepas guru dari jadwal (set NULL). Pointer nil saja tidak
	// cukup — nil juga berarti "field tidak dikirim".
	ClearTeacher bool
	AcademicYear *string
	IsActive     *bool
}

// applyScheduleUpdate menerapkan patch parsial: field nil dibiarkan,
// ClearTeacher menang atas TeacherID.
func applyScheduleUpdate(out *scheduleModel.ScheduleModel, up ScheduleUpdate) {
	if up.ClassID != nil {
		out.ScheduleClassID = *up.ClassID
	}
	if up.DayOfWeek != nil {
		out.ScheduleDayOfWeek = *up.DayOfWeek
	}
	if up.StartTime != nil {
		out.ScheduleStartTime = *up.StartTime
	}
	if up.EndTime != nil {
		out.ScheduleEndTime = *up.EndTime
	}
	if up.Subject != nil {
		out.ScheduleSubject = *up.Subject
	}
	switch {
	case up.ClearTeacher:
		out.ScheduleTeacherID = nil
	case up.TeacherID != nil:
		out.ScheduleTeacherID = up.TeacherID
	}
	if up.AcademicYear != nil {
		out.ScheduleAcademicYear = *up.AcademicYear
	}
	if up.IsActive != nil {
		out.ScheduleIsActive = *up.IsActive
	}
}

func (s *ScheduleService) Update(ctx context.Context, id uuid.UUID, up ScheduleUpdate) (*scheduleModel.ScheduleModel, error) {
	var out scheduleModel.ScheduleModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).First(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		applyScheduleUpdate(&out, up)

		check := ScheduleInput{
			ClassID:      out.ScheduleClassID,
			DayOfWeek:    out.ScheduleDayOfWeek,
			StartTime:    out.ScheduleStartTime,
			EndTime:      out.ScheduleEndTime,
			Subject:      out.ScheduleSubject,
			TeacherID:    out.ScheduleTeacherID,
			AcademicYear: out.ScheduleAcademicYear,
		}
		if err := check.Validate(); err != nil {
			return err
		}
		out.ScheduleDayOfWeek = check.DayOfWeek
		out.ScheduleStartTime = check.StartTime
		out.ScheduleEndTime = check.EndTime

		if out.ScheduleIsActive {
			conflicts, err := s.checkConflictsTx(tx, ConflictQuery{
				ClassID:      out.ScheduleClassID,
				TeacherID:    out.ScheduleTeacherID,
				DayOfWeek:    out.ScheduleDayOfWeek,
				StartTime:    out.ScheduleStartTime,
				EndTime:      out.ScheduleEndTime,
				AcademicYear: out.ScheduleAcademicYear,
				ExcludeID:    &out.ScheduleID,
			})
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &ConflictError{Conflicts: conflicts}
			}
		}

		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkCreate: validasi semua entri, deteksi bentrok di dalam batch sendiri,
// lalu cek terhadap jadwal tersimpan — semua dalam satu transaksi
// (all-or-nothing).
func (s *ScheduleService) BulkCreate(ctx context.Context, ins []ScheduleInput) ([]scheduleModel.ScheduleModel, error) {
	if len(ins) == 0 {
		return nil, fiber.NewError(http.StatusBadRequest, "daftar jadwal kosong")
	}
	for i := range ins {
		if err := ins[i].Validate(); err != nil {
			fe := err.(*fiber.Error)
			return nil, fiber.NewError(fe.Code, fmt.Sprintf("schedules[%d]: %s", i, fe.Message))
		}
	}
	if i, j, ok := BatchConflict(ins); ok {
		return nil, fiber.NewError(http.StatusConflict,
			fmt.Sprintf("schedules[%d] bentrok dengan schedules[%d] di batch yang sama", j, i))
	}

	var out []scheduleModel.ScheduleModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, in := range ins {
			conflicts, err := s.checkConflictsTx(tx, ConflictQuery{
				ClassID:      in.ClassID,
				TeacherID:    in.TeacherID,
				DayOfWeek:    in.DayOfWeek,
				StartTime:    in.StartTime,
				EndTime:      in.EndTime,
				AcademicYear: in.AcademicYear,
			})
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &ConflictError{Conflicts: conflicts}
			}

			m := scheduleModel.ScheduleModel{
				ScheduleClassID:      in.ClassID,
				ScheduleDayOfWeek:    in.DayOfWeek,
				ScheduleStartTime:    in.StartTime,
				ScheduleEndTime:      in.EndTime,
				ScheduleSubject:      in.Subject,
				ScheduleTeacherID:    in.TeacherID,
				ScheduleAcademicYear: in.AcademicYear,
				ScheduleIsActive:     true,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BatchConflict mencari pasangan entri yang saling bentrok di dalam batch:
// kelas yang sama, atau guru yang sama, pada hari+tahun ajaran yang sama.
func BatchConflict(ins []ScheduleInput) (int, int, bool) {
	for i := 0; i < len(ins); i++ {
		for j := i + 1; j < len(ins); j++ {
			a, b := ins[i], ins[j]
			if a.DayOfWeek != b.DayOfWeek || a.AcademicYear != b.AcademicYear {
				continue
			}
			if !Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				continue
			}
			if a.ClassID == b.ClassID {
				return i, j, true
			}
			if a.TeacherID != nil && b.TeacherID != nil && *a.TeacherID == *b.TeacherID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Deactivate: soft delete via flag aktif (integritas jadwal historis).
func (s *ScheduleService) Deactivate(ctx context.Context, id uuid.UUID) (*scheduleModel.ScheduleModel, error) {
	var out scheduleModel.ScheduleModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).First(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		out.ScheduleIsActive = false
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================
   Reads
   ========================= */

type ReadFilter struct {
	ClassID         *uuid.UUID
	TeacherID       *uuid.UUID
	AcademicYear    *string
	IncludeInactive bool
}

func (s *ScheduleService) List(ctx context.Context, f ReadFilter) ([]scheduleModel.ScheduleModel, error) {
	q := s.DB.WithContext(ctx).Model(&scheduleModel.ScheduleModel{})
	if !f.IncludeInactive {
		q = q.Where("schedule_is_active = TRUE")
	}
	if f.ClassID != nil {
		q = q.Where("schedule_class_id = ?", *f.ClassID)
	}
	if f.TeacherID != nil {
		q = q.Where("schedule_teacher_id = ?", *f.TeacherID)
	}
	if f.AcademicYear != nil {
		q = q.Where("schedule_academic_year = ?", *f.AcademicYear)
	}

	var rows []scheduleModel.ScheduleModel
	err := q.Order("schedule_day_of_week ASC, schedule_start_time ASC").Find(&rows).Error
	return rows, err
}

// Today: jadwal kelas untuk "hari ini" (timezone sekolah).
// Hari Minggu → kosong (bukan hari sekolah).
func (s *ScheduleService) Today(ctx context.Context, classID uuid.UUID) ([]scheduleModel.ScheduleModel, error) {
	dayName, ok := helper.DayName(helper.SchoolNow())
	if !ok {
		return []scheduleModel.ScheduleModel{}, nil
	}
	var rows []scheduleModel.ScheduleModel
	err := s.DB.WithContext(ctx).
		Where("schedule_is_active = TRUE AND schedule_class_id = ? AND schedule_day_of_week = ?", classID, dayName).
		Order("schedule_start_time ASC").
		Find(&rows).Error
	return rows, err
}
