// file: internals/features/users/user/dto/user_dto.go
package dto

/* =========================================================
   ADMIN — kelola akun
   ========================================================= */

type UserCreateRequest struct {
	UserUsername string `json:"user_username" validate:"required,min=3,max=50"`
	UserPassword string `json:"user_password" validate:"required,min=6,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin guru siswa"`
}

type UserUpdateRequest struct {
	UserUsername *string `json:"user_username" validate:"omitempty,min=3,max=50"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=admin guru siswa"`
	UserIsActive *bool   `json:"user_is_active"`
}

type ResetPasswordRequest struct {
	UserPassword string `json:"user_password" validate:"required,min=6,max=72"`
}

/* =========================================================
   SELF — ganti password sendiri
   ========================================================= */

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
}
