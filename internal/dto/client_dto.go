package dto

import (
	"time"

	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
)

// ClientRequest covers both create and update. Email and phone are optional;
// an empty string means "not provided" and is stored as NULL.
type ClientRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,loosephone"`
}

type ClientResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Email     *string           `json:"email"`
	Phone     *string           `json:"phone"`
	UserID    uuid.UUID         `json:"userId"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Missions  []MissionResponse `json:"missions"`
}

func NewClientResponse(c *models.Client) ClientResponse {
	missions := make([]MissionResponse, 0, len(c.Missions))
	for i := range c.Missions {
		missions = append(missions, NewMissionResponse(&c.Missions[i]))
	}
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Missions:  missions,
	}
}

type ClientPayload struct {
	Message string         `json:"message"`
	Client  ClientResponse `json:"client"`
}
