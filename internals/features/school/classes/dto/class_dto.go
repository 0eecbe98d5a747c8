// file: internals/features/school/classes/dto/class_dto.go
package dto

type ClassCreateRequest struct {
	ClassName         string `json:"class_name" validate:"required,min=1,max=50"`
	ClassGrade        string `json:"class_grade" validate:"required,min=1,max=10"`
	ClassAcademicYear string `json:"class_academic_year" validate:"required,max=9"`
}

type ClassUpdateRequest struct {
	ClassName         *string `json:"class_name" validate:"omitempty,min=1,max=50"`
	ClassGrade        *string `json:"class_grade" validate:"omitempty,min=1,max=10"`
	ClassAcademicYear *string `json:"class_academic_year" validate:"omitempty,max=9"`
	ClassIsActive     *bool   `json:"class_is_active"`
}
