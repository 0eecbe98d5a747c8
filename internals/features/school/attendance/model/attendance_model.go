package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceHadir      AttendanceStatus = "hadir"       // present
	AttendanceTidakHadir AttendanceStatus = "tidak_hadir" // absent
	AttendanceIzin       AttendanceStatus = "izin"        // excused (permission)
	AttendanceSakit      AttendanceStatus = "sakit"       // excused (sick)
	AttendanceAlpa       AttendanceStatus = "alpa"        // unexcused absent
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceHadir, AttendanceTidakHadir, AttendanceIzin, AttendanceSakit, AttendanceAlpa:
		return true
	}
	return false
}

// Satu record per (student, date) — dijaga unique index, bukan read-then-write.
// Record absensi tidak pernah dihapus (riwayat permanen).
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date;column:attendance_date" json:"attendance_date"`

	// Snapshot kelas saat record dibuat (denormalisasi untuk query)
	AttendanceClassID uuid.UUID `gorm:"type:uuid;not null;column:attendance_class_id;index:idx_attendance_class" json:"attendance_class_id"`

	AttendanceStatus AttendanceStatus `gorm:"type:varchar(16);not null;default:tidak_hadir;column:attendance_status;index:idx_attendance_status" json:"attendance_status"`

	// Timestamp check-in/out hanya bermakna saat status hadir
	AttendanceCheckInTime  *time.Time `gorm:"column:attendance_check_in_time" json:"attendance_check_in_time,omitempty"`
	AttendanceCheckOutTime *time.Time `gorm:"column:attendance_check_out_time" json:"attendance_check_out_time,omitempty"`

	AttendanceNotes *string `gorm:"type:text;column:attendance_notes" json:"attendance_notes,omitempty"`

	// users.user_id aktor yang membuat / terakhir mengubah record
	AttendanceCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_created_by" json:"attendance_created_by"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
