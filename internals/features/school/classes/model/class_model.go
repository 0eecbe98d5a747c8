package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	ClassName         string `gorm:"type:varchar(50);not null;uniqueIndex:uq_classes_name_year;column:class_name" json:"class_name"`                  // mis. "XII IPA 1"
	ClassGrade        string `gorm:"type:varchar(10);not null;column:class_grade" json:"class_grade"`                                                  // mis. "XII"
	ClassAcademicYear string `gorm:"type:varchar(9);not null;uniqueIndex:uq_classes_name_year;column:class_academic_year" json:"class_academic_year"` // mis. "2024/2025"

	ClassIsActive bool `gorm:"not null;default:true;column:class_is_active" json:"class_is_active"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
