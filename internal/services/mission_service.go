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

// ErrClientNotFound means the referenced client does not exist for this user.
// Handlers surface it as a 404, indistinguishable from a missing row.
var ErrClientNotFound = errors.New("client not found for this user")

type MissionService struct {
	db *gorm.DB
}

func NewMissionService(db *gorm.DB) *MissionService {
	return &MissionService{db: db}
}

// List returns the caller's missions newest first, each with its client
// loaded for the id+name summary.
func (s *MissionService) List(ctx context.Context, userID uuid.UUID) ([]models.Mission, error) {
	var missions []models.Mission
	err := s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		Preload("Client").
		Order("created_at DESC").
		Find(&missions).Error
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	return missions, nil
}

// Create validates that the referenced client belongs to the caller, then
// stamps the mission's currency from the caller's current currency. The stamp
// is permanent: updates never recompute it.
func (s *MissionService) Create(ctx context.Context, userID uuid.UUID, userCurrency string, req *dto.MissionRequest) (*models.Mission, error) {
	client, err := s.ownedClient(ctx, userID, req.ClientID)
	if err != nil {
		return nil, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return nil, err
	}

	mission := models.Mission{
		ID:       uuid.New(),
		Title:    req.Title,
		ClientID: client.ID,
		UserID:   userID,
		Amount:   float64(req.Amount),
		Currency: userCurrency,
		Date:     date,
		Status:   req.Status,
		Comment:  nilIfEmpty(req.Comment),
	}
	if err := s.db.WithContext(ctx).Create(&mission).Error; err != nil {
		return nil, fmt.Errorf("create mission: %w", err)
	}

	mission.Client = client
	return &mission, nil
}

// Update rewrites a mission owned by the caller. When the client reference
// changes, the new client's ownership is re-verified. Currency stays as
// stamped at creation.
func (s *MissionService) Update(ctx context.Context, userID, missionID uuid.UUID, req *dto.MissionRequest) (*models.Mission, error) {
	var mission models.Mission
	err := s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		First(&mission, "id = ?", missionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load mission: %w", err)
	}

	newClientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, ErrClientNotFound
	}

	var client *models.Client
	if newClientID != mission.ClientID {
		client, err = s.ownedClient(ctx, userID, req.ClientID)
		if err != nil {
			return nil, err
		}
	}

	date, err := req.ParsedDate()
	if err != nil {
		return nil, err
	}

	mission.Title = req.Title
	mission.ClientID = newClientID
	mission.Amount = float64(req.Amount)
	mission.Date = date
	mission.Status = req.Status
	mission.Comment = nilIfEmpty(req.Comment)

	if err := s.db.WithContext(ctx).Save(&mission).Error; err != nil {
		return nil, fmt.Errorf("update mission: %w", err)
	}

	if client == nil {
		client, err = s.ownedClient(ctx, userID, mission.ClientID.String())
		if err != nil {
			return nil, err
		}
	}
	mission.Client = client
	return &mission, nil
}

// Delete removes a mission owned by the caller. A second identical delete
// reports ErrNotFound rather than succeeding twice.
func (s *MissionService) Delete(ctx context.Context, userID, missionID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		Delete(&models.Mission{}, "id = ?", missionID)
	if result.Error != nil {
		return fmt.Errorf("delete mission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MissionService) ownedClient(ctx context.Context, userID uuid.UUID, clientID string) (*models.Client, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, ErrClientNotFound
	}
	var client models.Client
	err = s.db.WithContext(ctx).
		Scopes(session.OwnedBy(userID)).
		First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("load client: %w", err)
	}
	return &client, nil
}
