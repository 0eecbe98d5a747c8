package model

import (
	"time"

	"github.com/google/uuid"
)

// Jadwal mingguan berulang per kelas. start/end "HH:mm" zero-padded
// sehingga perbandingan string == perbandingan jam.
type ScheduleModel struct {
	// PK
	ScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`

	ScheduleClassID   uuid.UUID `gorm:"type:uuid;not null;column:schedule_class_id;index:idx_schedules_class" json:"schedule_class_id"`
	ScheduleDayOfWeek string    `gorm:"type:varchar(10);not null;column:schedule_day_of_week;index:idx_schedules_day" json:"schedule_day_of_week"` // senin..sabtu
	ScheduleStartTime string    `gorm:"type:varchar(5);not null;column:schedule_start_time" json:"schedule_start_time"`
	ScheduleEndTime   string    `gorm:"type:varchar(5);not null;column:schedule_end_time" json:"schedule_end_time"`
	ScheduleSubject   string    `gorm:"type:varchar(100);not null;column:schedule_subject" json:"schedule_subject"`

	ScheduleTeacherID *uuid.UUID `gorm:"type:uuid;column:schedule_teacher_id;index:idx_schedules_teacher" json:"schedule_teacher_id,omitempty"`

	ScheduleAcademicYear string `gorm:"type:varchar(9);not null;column:schedule_academic_year;index:idx_schedules_year" json:"schedule_academic_year"`

	// Soft delete via flag (integritas jadwal historis — tidak pernah hard delete)
	ScheduleIsActive bool `gorm:"not null;default:true;column:schedule_is_active" json:"schedule_is_active"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
}

func (ScheduleModel) TableName() string { return "schedules" }
