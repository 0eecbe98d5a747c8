// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/users/auth/dto"
	"absenku_backend/internals/features/users/auth/service"
	userModel "absenku_backend/internals/features/users/user/model"
	helper "absenku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
	}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	user, pair, err := ctrl.Service.Login(c.Context(), req.UserUsername, req.UserPassword)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	setAccessCookie(c, pair.AccessToken)
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         user,
	})
}

// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	user, pair, err := ctrl.Service.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	setAccessCookie(c, pair.AccessToken)
	return helper.JsonOK(c, "Token diperbarui", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         user,
	})
}

// POST /api/u/auth/logout — hapus cookie; token stateless kadaluarsa sendiri
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/u/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	var u userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Profil user", u)
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(service.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
