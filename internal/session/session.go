// Package session carries the authenticated user's claims through a request
// and scopes database queries to the rows that user owns.
package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoSession = errors.New("no session in request context")

// Claims is the fixed set of user fields frozen into the session token at
// issuance. A profile edit does not change an already-issued token; the
// profile endpoint re-issues the cookie instead.
type Claims struct {
	UserID         uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Country        string    `json:"country"`
	Currency       string    `json:"currency"`
	Phone          string    `json:"phone"`
	FreelancerType string    `json:"freelancerType"`
}

// FromContext extracts the session claims stored by the JWT middleware.
func FromContext(c *fiber.Ctx) (*Claims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, ErrNoSession
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}

	return &Claims{
		UserID:         userID,
		Name:           stringClaim(mapClaims, "name"),
		Email:          stringClaim(mapClaims, "email"),
		Country:        stringClaim(mapClaims, "country"),
		Currency:       stringClaim(mapClaims, "currency"),
		Phone:          stringClaim(mapClaims, "phone"),
		FreelancerType: stringClaim(mapClaims, "freelancer_type"),
	}, nil
}

// UserID extracts just the authenticated user's id.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := FromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// OwnedBy returns a GORM scope that filters rows by their owning user. Every
// client/mission read and write goes through this scope; there is no
// cross-user visibility.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
