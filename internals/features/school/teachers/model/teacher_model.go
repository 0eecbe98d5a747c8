package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	TeacherUserID uuid.UUID `gorm:"type:uuid;not null;column:teacher_user_id;index:idx_teachers_user" json:"teacher_user_id"`

	// NIP = Nomor Induk Pegawai, dipakai sebagai identitas login guru
	TeacherNIP      string  `gorm:"type:varchar(30);not null;uniqueIndex:uq_teachers_nip;column:teacher_nip" json:"teacher_nip"`
	TeacherFullName string  `gorm:"type:varchar(100);not null;column:teacher_full_name" json:"teacher_full_name"`
	TeacherEmail    *string `gorm:"type:varchar(100);column:teacher_email" json:"teacher_email,omitempty"`
	TeacherPhone    *string `gorm:"type:varchar(20);column:teacher_phone" json:"teacher_phone,omitempty"`
	TeacherAddress  *string `gorm:"type:text;column:teacher_address" json:"teacher_address,omitempty"`

	TeacherIsActive bool `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
