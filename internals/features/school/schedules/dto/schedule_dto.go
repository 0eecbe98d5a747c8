// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"github.com/google/uuid"

	"absenku_backend/internals/features/school/schedules/service"
)

/* =========================================================
   CREATE / BULK CREATE
   ========================================================= */

type ScheduleCreateRequest struct {
	ScheduleClassID      uuid.UUID  `json:"schedule_class_id" validate:"required"`
	ScheduleDayOfWeek    string     `json:"schedule_day_of_week" validate:"required,oneof=senin selasa rabu kamis jumat sabtu"`
	ScheduleStartTime    string     `json:"schedule_start_time" validate:"required,datetime=15:04"`
	ScheduleEndTime      string     `json:"schedule_end_time" validate:"required,datetime=15:04"`
	ScheduleSubject      string     `json:"schedule_subject" validate:"required,min=1,max=100"`
	ScheduleTeacherID    *uuid.UUID `json:"schedule_teacher_id"`
	ScheduleAcademicYear string     `json:"schedule_academic_year" validate:"required,max=9"`
}

func (r ScheduleCreateRequest) ToInput() service.ScheduleInput {
	return service.ScheduleInput{
		ClassID:      r.ScheduleClassID,
		DayOfWeek:    r.ScheduleDayOfWeek,
		StartTime:    r.ScheduleStartTime,
		EndTime:      r.ScheduleEndTime,
		Subject:      r.ScheduleSubject,
		TeacherID:    r.ScheduleTeacherID,
		AcademicYear: r.ScheduleAcademicYear,
	}
}

type ScheduleBulkCreateRequest struct {
	Schedules []ScheduleCreateRequest `json:"schedules" validate:"required,min=1,dive"`
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type ScheduleUpdateRequest struct {
	ScheduleClassID      *uuid.UUID `json:"schedule_class_id"`
	ScheduleDayOfWeek    *string    `json:"schedule_day_of_week" validate:"omitempty,oneof=senin selasa rabu kamis jumat sabtu"`
	ScheduleStartTime    *string    `json:"schedule_start_time" validate:"omitempty,datetime=15:04"`
	ScheduleEndTime      *string    `json:"schedule_end_time" validate:"omitempty,datetime=15:04"`
	ScheduleSubject      *string    `json:"schedule_subject" validate:"omitempty,min=1,max=100"`
	ScheduleTeacherID    *uuid.UUID `json:"schedule_teacher_id"`
	// JSON tidak membedakan field absen vs null setelah unmarshal ke pointer,
	// jadi melepas guru memakai flag eksplisit.
	ScheduleClearTeacher bool    `json:"schedule_clear_teacher"`
	ScheduleAcademicYear *string `json:"schedule_academic_year" validate:"omitempty,max=9"`
	ScheduleIsActive     *bool   `json:"schedule_is_active"`
}

func (r ScheduleUpdateRequest) ToUpdate() service.ScheduleUpdate {
	return service.ScheduleUpdate{
		ClassID:      r.ScheduleClassID,
		DayOfWeek:    r.ScheduleDayOfWeek,
		StartTime:    r.ScheduleStartTime,
		EndTime:      r.ScheduleEndTime,
		Subject:      r.ScheduleSubject,
		TeacherID:    r.ScheduleTeacherID,
		ClearTeacher: r.ScheduleClearTeacher,
		AcademicYear: r.ScheduleAcademicYear,
		IsActive:     r.ScheduleIsActive,
	}
}

/* =========================================================
   CONFLICT CHECK (dry run)
   ========================================================= */

type ScheduleConflictCheckRequest struct {
	ScheduleClassID      uuid.UUID  `json:"schedule_class_id" validate:"required"`
	ScheduleDayOfWeek    string     `json:"schedule_day_of_week" validate:"required,oneof=senin selasa rabu kamis jumat sabtu"`
	ScheduleStartTime    string     `json:"schedule_start_time" validate:"required,datetime=15:04"`
	ScheduleEndTime      string     `json:"schedule_end_time" validate:"required,datetime=15:04"`
	ScheduleTeacherID    *uuid.UUID `json:"schedule_teacher_id"`
	ScheduleAcademicYear string     `json:"schedule_academic_year" validate:"required,max=9"`
	ExcludeScheduleID    *uuid.UUID `json:"exclude_schedule_id"`
}
