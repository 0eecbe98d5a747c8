package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleTeacher UserRole = "guru"
	UserRoleStudent UserRole = "siswa"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserUsername     string   `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_username;column:user_username" json:"user_username"`
	UserPasswordHash string   `gorm:"type:text;not null;column:user_password_hash" json:"-"`
	UserRole         UserRole `gorm:"type:varchar(10);not null;column:user_role;index:idx_users_role" json:"user_role"`

	// Soft delete pakai flag aktif (retensi data, bukan hard delete)
	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
