package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentUserID uuid.UUID `gorm:"type:uuid;not null;column:student_user_id;index:idx_students_user" json:"student_user_id"`

	// NISN = Nomor Induk Siswa Nasional, dipakai sebagai identitas login siswa
	StudentNISN     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_students_nisn;column:student_nisn" json:"student_nisn"`
	StudentFullName string    `gorm:"type:varchar(100);not null;column:student_full_name" json:"student_full_name"`
	StudentClassID  uuid.UUID `gorm:"type:uuid;not null;column:student_class_id;index:idx_students_class" json:"student_class_id"`

	StudentEmail       *string `gorm:"type:varchar(100);column:student_email" json:"student_email,omitempty"`
	StudentPhone       *string `gorm:"type:varchar(20);column:student_phone" json:"student_phone,omitempty"`
	StudentAddress     *string `gorm:"type:text;column:student_address" json:"student_address,omitempty"`
	StudentParentName  *string `gorm:"type:varchar(100);column:student_parent_name" json:"student_parent_name,omitempty"`
	StudentParentPhone *string `gorm:"type:varchar(20);column:student_parent_phone" json:"student_parent_phone,omitempty"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
