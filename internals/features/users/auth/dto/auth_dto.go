// file: internals/features/users/auth/dto/auth_dto.go
package dto

type LoginRequest struct {
	UserUsername string `json:"user_username" validate:"required,min=3,max=50"`
	UserPassword string `json:"user_password" validate:"required,min=6,max=72"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // detik
	User         any    `json:"user"`
}
