package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LeaveType string

const (
	LeaveTypeIzin  LeaveType = "izin"
	LeaveTypeSakit LeaveType = "sakit"
)

func (t LeaveType) Valid() bool {
	return t == LeaveTypeIzin || t == LeaveTypeSakit
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Pengajuan izin/sakit siswa untuk rentang tanggal [start, end] inklusif.
// Transisi status satu arah dari pending; cancel = soft delete (hanya pending,
// hanya pemilik).
type LeaveRequestModel struct {
	// PK
	LeaveRequestID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leave_request_id" json:"leave_request_id"`

	LeaveRequestStudentID uuid.UUID `gorm:"type:uuid;not null;column:leave_request_student_id;index:idx_leave_requests_student" json:"leave_request_student_id"`
	LeaveRequestType      LeaveType `gorm:"type:varchar(8);not null;column:leave_request_type" json:"leave_request_type"`

	LeaveRequestStartDate time.Time `gorm:"type:date;not null;column:leave_request_start_date" json:"leave_request_start_date"`
	LeaveRequestEndDate   time.Time `gorm:"type:date;not null;column:leave_request_end_date" json:"leave_request_end_date"`

	LeaveRequestReason        string  `gorm:"type:text;not null;column:leave_request_reason" json:"leave_request_reason"`
	LeaveRequestAttachmentURL *string `gorm:"type:text;column:leave_request_attachment_url" json:"leave_request_attachment_url,omitempty"`

	LeaveRequestStatus LeaveStatus `gorm:"type:varchar(10);not null;default:pending;column:leave_request_status;index:idx_leave_requests_status" json:"leave_request_status"`

	LeaveRequestApprovedBy    *uuid.UUID `gorm:"type:uuid;column:leave_request_approved_by" json:"leave_request_approved_by,omitempty"`
	LeaveRequestApprovedAt    *time.Time `gorm:"column:leave_request_approved_at" json:"leave_request_approved_at,omitempty"`
	LeaveRequestApprovalNotes *string    `gorm:"type:text;column:leave_request_approval_notes" json:"leave_request_approval_notes,omitempty"`

	// Hasil materialisasi absensi saat approve (audit): jumlah record dibuat
	// + tanggal yang dilewati karena sudah hadir.
	LeaveRequestMaterialization datatypes.JSONMap `gorm:"type:jsonb;column:leave_request_materialization" json:"leave_request_materialization,omitempty"`

	LeaveRequestCreatedAt time.Time      `gorm:"column:leave_request_created_at;autoCreateTime" json:"leave_request_created_at"`
	LeaveRequestUpdatedAt time.Time      `gorm:"column:leave_request_updated_at;autoUpdateTime" json:"leave_request_updated_at"`
	LeaveRequestDeletedAt gorm.DeletedAt `gorm:"column:leave_request_deleted_at;index" json:"leave_request_deleted_at,omitempty"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }
