package model

import (
	"time"

	"github.com/google/uuid"
)

// Penugasan guru ke kelas per tahun ajaran (wali kelas via is_homeroom).
type TeacherClassModel struct {
	// PK
	TeacherClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_class_id" json:"teacher_class_id"`

	TeacherClassTeacherID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_classes_year;column:teacher_class_teacher_id" json:"teacher_class_teacher_id"`
	TeacherClassClassID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_classes_year;column:teacher_class_class_id" json:"teacher_class_class_id"`
	TeacherClassIsHomeroom   bool      `gorm:"not null;default:false;column:teacher_class_is_homeroom" json:"teacher_class_is_homeroom"`
	TeacherClassAcademicYear string    `gorm:"type:varchar(9);not null;uniqueIndex:uq_teacher_classes_year;column:teacher_class_academic_year" json:"teacher_class_academic_year"`

	TeacherClassCreatedAt time.Time `gorm:"column:teacher_class_created_at;autoCreateTime" json:"teacher_class_created_at"`
}

func (TeacherClassModel) TableName() string { return "teacher_classes" }
