package dto

import (
	"time"

	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Country        string `json:"country" validate:"required,min=2"`
	Phone          string `json:"phone" validate:"omitempty,loosephone"`
	FreelancerType string `json:"freelancerType" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// UserResponse is a user row without the password hash.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Country        string    `json:"country"`
	Currency       *string   `json:"currency"`
	Phone          *string   `json:"phone"`
	FreelancerType string    `json:"freelancerType"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Country:        u.Country,
		Currency:       u.Currency,
		Phone:          u.Phone,
		FreelancerType: u.FreelancerType,
		CreatedAt:      u.CreatedAt,
	}
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
