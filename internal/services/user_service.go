package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/freelansy/freelansy/internal/currency"
	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpdateProfile applies the provided fields and keeps the rest. Currency is
// re-derived from the effective country — the updated one when provided,
// otherwise the stored one — so a country change always recomputes it.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = nilIfEmpty(*req.Phone)
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.FreelancerType != nil {
		user.FreelancerType = *req.FreelancerType
	}

	if cur, ok := currency.FromCountry(user.Country); ok {
		user.Currency = &cur
	} else {
		slog.Warn("no currency mapping for country", "country", user.Country, "user_id", user.ID.String())
		user.Currency = nil
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}
	if user.Password == "" {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
