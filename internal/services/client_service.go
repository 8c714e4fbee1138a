package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/freelansy/freelansy/internal/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound covers both genuinely missing rows and rows owned by another
// user, so responses never leak whether a foreign row exists.
var ErrNotFound = errors.New("record not found")

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func missionsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// List returns the caller's clients newest first, each with its missions
// newest first.
func (s *ClientService) List(ctx context.Context, userID uuid.UUID) ([]models.Client, error) {
	var clients []models.Client
	err := s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		Preload("Missions", missionsNewestFirst).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Create(ctx context.Context, userID uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	client := models.Client{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    nilIfEmpty(req.Email),
		Phone:    nilIfEmpty(req.Phone),
		UserID:   userID,
		Missions: []models.Mission{},
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &client, nil
}

func (s *ClientService) Update(ctx context.Context, userID, clientID uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		Preload("Missions", missionsNewestFirst).
		First(&client, "id = ?", clientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load client: %w", err)
	}

	client.Name = req.Name
	client.Email = nilIfEmpty(req.Email)
	client.Phone = nilIfEmpty(req.Phone)

	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return &client, nil
}

// Delete removes a client owned by the caller. Its missions go with it via
// the ON DELETE CASCADE foreign key, not an application-level loop.
func (s *ClientService) Delete(ctx context.Context, userID, clientID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		Delete(&models.Client{}, "id = ?", clientID)
	if result.Error != nil {
		return fmt.Errorf("delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
