// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authService "absenku_backend/internals/features/users/auth/service"
	"absenku_backend/internals/features/users/user/dto"
	userModel "absenku_backend/internals/features/users/user/model"
	helper "absenku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

func (ctrl *UserController) findByID(c *fiber.Ctx) (*userModel.UserModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id tidak valid")
	}
	var u userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, err
	}
	return &u, nil
}

/* ===================== ADMIN ===================== */

// POST /api/a/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	hash, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	u := userModel.UserModel{
		UserUsername:     strings.TrimSpace(req.UserUsername),
		UserPasswordHash: hash,
		UserRole:         userModel.UserRole(req.UserRole),
		UserIsActive:     true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "User dibuat", u)
}

// GET /api/a/users?role=&active=&q=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if c.Query("active") != "" {
		q = q.Where("user_is_active = ?", c.QueryBool("active"))
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("user_username ILIKE ?", "%"+search+"%")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []userModel.UserModel
	if err := q.Order("user_created_at DESC").
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	meta.Count = len(rows)
	return helper.JsonList(c, "Daftar user", rows, &meta)
}

// GET /api/a/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	u, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail user", u)
}

// PATCH /api/a/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	u, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.UserUsername != nil {
		u.UserUsername = strings.TrimSpace(*req.UserUsername)
	}
	if req.UserRole != nil {
		u.UserRole = userModel.UserRole(*req.UserRole)
	}
	if req.UserIsActive != nil {
		u.UserIsActive = *req.UserIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "User diperbarui", u)
}

// PATCH /api/a/users/:id/reset-password
func (ctrl *UserController) ResetPassword(c *fiber.Ctx) error {
	u, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	hash, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	u.UserPasswordHash = hash
	if err := ctrl.DB.WithContext(c.Context()).Save(u).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Password direset", fiber.Map{"user_id": u.UserID})
}

// DELETE /api/a/users/:id — nonaktifkan akun (soft delete via flag)
func (ctrl *UserController) Deactivate(c *fiber.Ctx) error {
	u, err := ctrl.findByID(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	u.UserIsActive = false
	if err := ctrl.DB.WithContext(c.Context()).Save(u).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "User dinonaktifkan", u)
}

/* ===================== SELF ===================== */

// PATCH /api/u/users/change-password
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var u userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ? AND user_is_active = TRUE", userID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(req.OldPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	u.UserPasswordHash = hash
	if err := ctrl.DB.WithContext(c.Context()).Save(&u).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Password diganti", fiber.Map{"user_id": u.UserID})
}
