package models

import (
	"time"

	"github.com/google/uuid"
)

// Mission statuses. Status is always one of these four values.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusPartial   = "partial"
	StatusCancelled = "cancelled"
)

// MissionStatuses lists every valid status value.
var MissionStatuses = []string{StatusPending, StatusPaid, StatusPartial, StatusCancelled}

// Mission is a work engagement billed to a client. UserID duplicates the
// owning client's user so missions can be filtered by owner without a join.
// Currency is stamped from the user's currency at creation time and is not
// recomputed on update.
type Mission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Currency  string    `gorm:"size:3" json:"currency"`
	Date      time.Time `gorm:"not null" json:"date"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
}

// ValidStatus reports whether s is one of the four enumerated statuses.
func ValidStatus(s string) bool {
	for _, status := range MissionStatuses {
		if s == status {
			return true
		}
	}
	return false
}
