package dto

import (
	"errors"
	"time"

	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
)

type MissionRequest struct {
	Title    string `json:"title" validate:"required,min=3"`
	ClientID string `json:"clientId" validate:"required"`
	Amount   Number `json:"amount" validate:"required,gt=0"`
	Date     string `json:"date" validate:"required"`
	Status   string `json:"status" validate:"required,missionstatus"`
	Comment  string `json:"comment"`
}

var ErrInvalidDate = errors.New("invalid date format")

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05.000Z07:00", "2006-01-02"}

// ParsedDate coerces the date string into a time.Time.
func (r *MissionRequest) ParsedDate() (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ClientSummary is the id+name projection embedded in mission responses.
type ClientSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MissionResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	ClientID  uuid.UUID      `json:"clientId"`
	UserID    uuid.UUID      `json:"userId"`
	Amount    float64        `json:"amount"`
	Currency  string         `json:"currency"`
	Date      time.Time      `json:"date"`
	Status    string         `json:"status"`
	Comment   *string        `json:"comment"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Client    *ClientSummary `json:"client,omitempty"`
}

func NewMissionResponse(m *models.Mission) MissionResponse {
	resp := MissionResponse{
		ID:        m.ID,
		Title:     m.Title,
		ClientID:  m.ClientID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Currency:  m.Currency,
		Date:      m.Date,
		Status:    m.Status,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Client != nil {
		resp.Client = &ClientSummary{ID: m.Client.ID, Name: m.Client.Name}
	}
	return resp
}

type MissionPayload struct {
	Message string          `json:"message"`
	Mission MissionResponse `json:"mission"`
}
