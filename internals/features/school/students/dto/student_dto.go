// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"
)

type StudentCreateRequest struct {
	StudentUserID      uuid.UUID `json:"student_user_id" validate:"required"`
	StudentNISN        string    `json:"student_nisn" validate:"required,min=5,max=20"`
	StudentFullName    string    `json:"student_full_name" validate:"required,min=1,max=100"`
	StudentClassID     uuid.UUID `json:"student_class_id" validate:"required"`
	StudentEmail       *string   `json:"student_email" validate:"omitempty,email,max=100"`
	StudentPhone       *string   `json:"student_phone" validate:"omitempty,max=20"`
	StudentAddress     *string   `json:"student_address"`
	StudentParentName  *string   `json:"student_parent_name" validate:"omitempty,max=100"`
	StudentParentPhone *string   `json:"student_parent_phone" validate:"omitempty,max=20"`
}

type StudentUpdateRequest struct {
	StudentNISN        *string `json:"student_nisn" validate:"omitempty,min=5,max=20"`
	StudentFullName    *string `json:"student_full_name" validate:"omitempty,min=1,max=100"`
	StudentEmail       *string `json:"student_email" validate:"omitempty,email,max=100"`
	StudentPhone       *string `json:"student_phone" validate:"omitempty,max=20"`
	StudentAddress     *string `json:"student_address"`
	StudentParentName  *string `json:"student_parent_name" validate:"omitempty,max=100"`
	StudentParentPhone *string `json:"student_parent_phone" validate:"omitempty,max=20"`
	StudentIsActive    *bool   `json:"student_is_active"`
}

// Pindah kelas: tidak lewat Update biasa supaya eksplisit
// (record absensi lama tetap menunjuk kelas lama).
type StudentTransferRequest struct {
	StudentClassID uuid.UUID `json:"student_class_id" validate:"required"`
}
