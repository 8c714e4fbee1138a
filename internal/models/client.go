package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer of a freelancer. Rows are only ever visible to their
// owning user. The Missions association carries ON DELETE CASCADE so removing
// a client removes its missions at the schema level.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     *string   `gorm:"size:255" json:"email"`
	Phone     *string   `gorm:"size:32" json:"phone"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Missions []Mission `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"missions"`
}
