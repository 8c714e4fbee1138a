package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered freelancer account. Email is stored lowercased so the
// unique index also enforces case-insensitive uniqueness. Currency is derived
// from Country at write time and may be absent when the country has no single
// national currency.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Country        string    `gorm:"size:2" json:"country"`
	Currency       *string   `gorm:"size:3" json:"currency"`
	Phone          *string   `gorm:"size:32" json:"phone"`
	FreelancerType string    `gorm:"size:50" json:"freelancerType"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
