package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/freelansy/freelansy/internal/currency"
	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a user. Email is lowercased before both the uniqueness
// check and the insert, so duplicates differing only in case are rejected.
// Currency is derived from the country; an unresolved country leaves it unset.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          email,
		Password:       string(hash),
		Country:        strings.ToUpper(req.Country),
		FreelancerType: req.FreelancerType,
	}
	if cur, ok := currency.FromCountry(req.Country); ok {
		user.Currency = &cur
	} else {
		slog.Warn("no currency mapping for country", "country", req.Country)
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent register can slip past the pre-check; the unique index
		// is the authoritative guard.
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login verifies credentials. A missing user, a row without a stored hash and
// a wrong password all fail with the same error; the debug log is the only
// place the cases are told apart.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		slog.Debug("login failed: user not found", "email", email)
		return nil, ErrInvalidCredentials
	}

	if user.Password == "" {
		slog.Debug("login failed: no password hash stored", "user_id", user.ID.String())
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		slog.Debug("login failed: password mismatch", "user_id", user.ID.String())
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// EmailExists reports whether a user is registered under the given email,
// case-insensitively.
func (s *AuthService) EmailExists(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IssueToken builds the session JWT. The claim set is frozen from the user
// row at issuance; callers re-issue after a profile change.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	cur := ""
	if user.Currency != nil {
		cur = *user.Currency
	}
	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}

	claims := jwt.MapClaims{
		"sub":             user.ID.String(),
		"name":            user.Name,
		"email":           user.Email,
		"country":         user.Country,
		"currency":        cur,
		"phone":           phone,
		"freelancer_type": user.FreelancerType,
		"iat":             time.Now().Unix(),
		"exp":             time.Now().Add(s.cfg.SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
