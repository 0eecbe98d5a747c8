// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"github.com/google/uuid"
)

type TeacherCreateRequest struct {
	TeacherUserID   uuid.UUID `json:"teacher_user_id" validate:"required"`
	TeacherNIP      string    `json:"teacher_nip" validate:"required,min=3,max=30"`
	TeacherFullName string    `json:"teacher_full_name" validate:"required,min=1,max=100"`
	TeacherEmail    *string   `json:"teacher_email" validate:"omitempty,email,max=100"`
	TeacherPhone    *string   `json:"teacher_phone" validate:"omitempty,max=20"`
	TeacherAddress  *string   `json:"teacher_address"`
}

type TeacherUpdateRequest struct {
	TeacherNIP      *string `json:"teacher_nip" validate:"omitempty,min=3,max=30"`
	TeacherFullName *string `json:"teacher_full_name" validate:"omitempty,min=1,max=100"`
	TeacherEmail    *string `json:"teacher_email" validate:"omitempty,email,max=100"`
	TeacherPhone    *string `json:"teacher_phone" validate:"omitempty,max=20"`
	TeacherAddress  *string `json:"teacher_address"`
	TeacherIsActive *bool   `json:"teacher_is_active"`
}

type TeacherAssignClassRequest struct {
	TeacherClassClassID      uuid.UUID `json:"teacher_class_class_id" validate:"required"`
	TeacherClassAcademicYear string    `json:"teacher_class_academic_year" validate:"required,max=9"`
	TeacherClassIsHomeroom   bool      `json:"teacher_class_is_homeroom"`
}
