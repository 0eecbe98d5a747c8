// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
   CHECK-IN / CHECK-OUT (siswa)
   ========================================================= */

type CheckInRequest struct {
	AttendanceClassID uuid.UUID `json:"attendance_class_id" validate:"required"`
	// default: hari ini (waktu sekolah)
	AttendanceDate *string `json:"attendance_date" validate:"omitempty,datetime=2006-01-02"`
}

type CheckOutRequest struct {
	AttendanceDate *string `json:"attendance_date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   MARK / BULK MARK (guru/admin)
   ========================================================= */

type MarkRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceClassID   uuid.UUID `json:"attendance_class_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=hadir tidak_hadir izin sakit alpa"`
	AttendanceNotes     *string   `json:"attendance_notes" validate:"omitempty,max=500"`
}

type BulkMarkItem struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=hadir tidak_hadir izin sakit alpa"`
	AttendanceNotes     *string   `json:"attendance_notes" validate:"omitempty,max=500"`
}

type BulkMarkRequest struct {
	AttendanceClassID uuid.UUID      `json:"attendance_class_id" validate:"required"`
	AttendanceDate    string         `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Entries           []BulkMarkItem `json:"entries" validate:"required,min=1,dive"`
}
