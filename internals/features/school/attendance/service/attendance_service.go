// file: internals/features/school/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "absenku_backend/internals/features/school/attendance/model"
	studentModel "absenku_backend/internals/features/school/students/model"
	helper "absenku_backend/internals/helpers"
)

/* =========================
   Service & known conditions
   ========================= */

type AttendanceService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

var (
	// Check-in ulang ditolak — timestamp check-in pertama adalah yang otoritatif.
	ErrAlreadyCheckedIn = fiber.NewError(http.StatusConflict, "Sudah check-in untuk tanggal ini")
	// Check-out tanpa check-in aktif.
	ErrNoActiveCheckIn = fiber.NewError(http.StatusConflict, "Belum ada check-in aktif untuk tanggal ini")

	ErrStudentNotFound = fiber.NewError(http.StatusNotFound, "Siswa tidak ditemukan")
	ErrClassMismatch   = fiber.NewError(http.StatusBadRequest, "class_id tidak sesuai dengan kelas siswa saat ini")
)

func (s *AttendanceService) activeStudent(tx *gorm.DB, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var st studentModel.StudentModel
	err := tx.
		Where("student_id = ? AND student_is_active = TRUE", studentID).
		First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &st, nil
}

/* =========================
   Check-in / Check-out
   ========================= */

// CheckIn membuat record hari itu dengan status hadir + jam check-in sekarang
// (waktu sekolah). Record yang sudah ada = konflik, bukan overwrite.
func (s *AttendanceService) CheckIn(ctx context.Context, studentID, classID uuid.UUID, date time.Time) (*attModel.AttendanceModel, error) {
	day := helper.DateOnly(date)
	now := helper.SchoolNow()

	var rec attModel.AttendanceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := s.activeStudent(tx, studentID)
		if err != nil {
			return err
		}
		if st.StudentClassID != classID {
			return ErrClassMismatch
		}

		var existing attModel.AttendanceModel
		err = tx.Where("attendance_student_id = ? AND attendance_date = ?", studentID, day).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyCheckedIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rec = attModel.AttendanceModel{
			AttendanceStudentID:   studentID,
			AttendanceDate:        day,
			AttendanceClassID:     classID,
			AttendanceStatus:      attModel.AttendanceHadir,
			AttendanceCheckInTime: &now,
			AttendanceCreatedBy:   st.StudentUserID, // siswa meng-absen dirinya sendiri
		}
		if err := tx.Create(&rec).Error; err != nil {
			// race: insert paralel kalah di unique index → record sudah ada
			if helper.IsUniqueViolation(err) {
				return ErrAlreadyCheckedIn
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckOut menggeser jam pulang ke "sekarang" (last write wins — check-out
// merepresentasikan "pulang per jam sekian"). Butuh check-in lebih dulu.
func (s *AttendanceService) CheckOut(ctx context.Context, studentID uuid.UUID, date time.Time) (*attModel.AttendanceModel, error) {
	day := helper.DateOnly(date)
	now := helper.SchoolNow()

	var rec attModel.AttendanceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_student_id = ? AND attendance_date = ?", studentID, day).
			First(&rec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveCheckIn
			}
			return err
		}
		if rec.AttendanceCheckInTime == nil {
			return ErrNoActiveCheckIn
		}
		rec.AttendanceCheckOutTime = &now
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

/* =========================
   Manual mark / bulk mark
   ========================= */

type MarkInput struct {
	StudentID uuid.UUID
	ClassID   uuid.UUID
	Date      time.Time
	Status    attModel.AttendanceStatus
	Notes     *string
	ActorID   uuid.UUID // users.user_id guru/admin
}

// Mark meng-upsert record harian dengan status yang diminta (override manual
// selalu menang atas check-in/out mandiri).
func (s *AttendanceService) Mark(ctx context.Context, in MarkInput) (*attModel.AttendanceModel, error) {
	if !in.Status.Valid() {
		return nil, fiber.NewError(http.StatusBadRequest, fmt.Sprintf("status absensi tidak dikenal: %q", in.Status))
	}

	var rec *attModel.AttendanceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.activeStudent(tx, in.StudentID); err != nil {
			return err
		}
		r, _, err := s.markUpsertTx(tx, in, helper.SchoolNow(), false)
		rec = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type BulkMarkEntry struct {
	StudentID uuid.UUID                  `json:"student_id"`
	Status    attModel.AttendanceStatus  `json:"status"`
	Notes     *string                    `json:"notes,omitempty"`
}

// BulkMark menerapkan semantik Mark ke seluruh entri sebagai satu unit atomik:
// semua commit atau tidak sama sekali. Semua siswa divalidasi anggota kelas
// sebelum ada baris yang ditulis.
func (s *AttendanceService) BulkMark(ctx context.Context, classID uuid.UUID, date time.Time, entries []BulkMarkEntry, actorID uuid.UUID) ([]attModel.AttendanceModel, error) {
	if len(entries) == 0 {
		return nil, fiber.NewError(http.StatusBadRequest, "daftar absensi kosong")
	}
	for i, e := range entries {
		if !e.Status.Valid() {
			return nil, fiber.NewError(http.StatusBadRequest, fmt.Sprintf("entries[%d]: status absensi tidak dikenal: %q", i, e.Status))
		}
	}

	now := helper.SchoolNow()
	var out []attModel.AttendanceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uuid.UUID
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_class_id = ? AND student_is_active = TRUE", classID).
			Pluck("student_id", &ids).Error; err != nil {
			return err
		}
		members := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			members[id] = struct{}{}
		}
		for i, e := range entries {
			if _, ok := members[e.StudentID]; !ok {
				return fiber.NewError(http.StatusBadRequest, fmt.Sprintf("entries[%d]: siswa %s bukan anggota kelas", i, e.StudentID))
			}
		}

		for _, e := range entries {
			rec, _, err := s.markUpsertTx(tx, MarkInput{
				StudentID: e.StudentID,
				ClassID:   classID,
				Date:      date,
				Status:    e.Status,
				Notes:     e.Notes,
				ActorID:   actorID,
			}, now, false)
			if err != nil {
				return err
			}
			out = append(out, *rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertExcusedTx dipakai Leave Approval Engine: sama dengan Mark, tapi hari
// yang sudah hadir dilewati (approval mengisi celah, tidak pernah menurunkan
// hari hadir yang sudah tercatat). Return skipped=true saat dilewati.
func (s *AttendanceService) UpsertExcusedTx(tx *gorm.DB, in MarkInput, now time.Time) (*attModel.AttendanceModel, bool, error) {
	return s.markUpsertTx(tx, in, now, true)
}

// SkipExcusedOverwrite: aturan materialisasi izin untuk record yang sudah ada —
// hadir tidak pernah diturunkan, status lain boleh ditimpa.
func SkipExcusedOverwrite(status attModel.AttendanceStatus) bool {
	return status == attModel.AttendanceHadir
}

// markUpsertTx: upsert satu record (student, date) di dalam transaksi pemanggil.
// Pola: insert dulu; kalau unique index menolak (race), muat ulang dengan lock
// dan lanjutkan sebagai update — bukan read-then-write.
func (s *AttendanceService) markUpsertTx(tx *gorm.DB, in MarkInput, now time.Time, skipIfHadir bool) (*attModel.AttendanceModel, bool, error) {
	day := helper.DateOnly(in.Date)

	var rec attModel.AttendanceModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("attendance_student_id = ? AND attendance_date = ?", in.StudentID, day).
		First(&rec).Error

	switch {
	case err == nil:
		if skipIfHadir && SkipExcusedOverwrite(rec.AttendanceStatus) {
			return &rec, true, nil
		}
		applyMark(&rec, in.Status, in.Notes, in.ActorID, now)
		if err := tx.Save(&rec).Error; err != nil {
			return nil, false, err
		}
		return &rec, false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = attModel.AttendanceModel{
			AttendanceStudentID: in.StudentID,
			AttendanceDate:      day,
			AttendanceClassID:   in.ClassID,
		}
		applyMark(&rec, in.Status, in.Notes, in.ActorID, now)
		if err := tx.Create(&rec).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				// kalah race dengan check-in paralel → retry sebagai update
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("attendance_student_id = ? AND attendance_date = ?", in.StudentID, day).
					First(&rec).Error; err != nil {
					return nil, false, err
				}
				if skipIfHadir && SkipExcusedOverwrite(rec.AttendanceStatus) {
					return &rec, true, nil
				}
				applyMark(&rec, in.Status, in.Notes, in.ActorID, now)
				if err := tx.Save(&rec).Error; err != nil {
					return nil, false, err
				}
				return &rec, false, nil
			}
			return nil, false, err
		}
		return &rec, false, nil

	default:
		return nil, false, err
	}
}

// applyMark memutasi record sesuai aturan override manual:
//   - status & aktor selalu ditimpa;
//   - status hadir tanpa jam check-in → set check-in sekarang;
//   - selain itu jam check-in/out TIDAK disentuh (bukti check-in lama
//     tidak dihapus oleh override).
func applyMark(rec *attModel.AttendanceModel, status attModel.AttendanceStatus, notes *string, actor uuid.UUID, now time.Time) {
	rec.AttendanceStatus = status
	rec.AttendanceCreatedBy = actor
	if notes != nil {
		rec.AttendanceNotes = notes
	}
	if status == attModel.AttendanceHadir && rec.AttendanceCheckInTime == nil {
		t := now
		rec.AttendanceCheckInTime = &t
	}
}
