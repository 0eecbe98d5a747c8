// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	userModel "absenku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Pesan sengaja sama untuk username salah dan password salah
// (tidak membocorkan akun mana yang ada).
var ErrInvalidCredentials = fiber.NewError(http.StatusUnauthorized, "Username atau password salah")

// Hash bcrypt valid (cost default) dari password dummy. Dipakai saat username
// tidak ditemukan supaya compare tetap berjalan penuh, bukan gagal parse.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Login memverifikasi kredensial dan menerbitkan pasangan token.
// Akun nonaktif diperlakukan sama dengan kredensial salah.
func (s *AuthService) Login(ctx context.Context, username, password string) (*userModel.UserModel, *TokenPair, error) {
	var u userModel.UserModel
	err := s.DB.WithContext(ctx).
		Where("user_username = ? AND user_is_active = TRUE", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// tetap bakar waktu bcrypt supaya timing login tidak membedakan
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(&u)
	if err != nil {
		return nil, nil, err
	}
	return &u, pair, nil
}

// Refresh memverifikasi refresh token dan menerbitkan pasangan baru
// (rotasi penuh, refresh lama tidak dicabut — stateless).
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*userModel.UserModel, *TokenPair, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return nil, nil, fiber.NewError(http.StatusUnauthorized, "Refresh token tidak valid")
	}
	userIDRaw, _ := claims["user_id"].(string)
	if userIDRaw == "" {
		return nil, nil, fiber.NewError(http.StatusUnauthorized, "Refresh token tidak valid")
	}

	var u userModel.UserModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND user_is_active = TRUE", userIDRaw).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(http.StatusUnauthorized, "Akun tidak aktif")
		}
		return nil, nil, err
	}

	pair, err := s.issueTokens(&u)
	if err != nil {
		return nil, nil, err
	}
	return &u, pair, nil
}

func (s *AuthService) issueTokens(u *userModel.UserModel) (*TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"role":      string(u.UserRole),
		"user_name": u.UserUsername,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.UserID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

// HashPassword: bcrypt default cost (dipakai create user & ganti password).
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
