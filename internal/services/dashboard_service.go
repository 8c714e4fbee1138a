package services

import (
	"context"
	"time"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freelansy/freelansy/pkg/format"
)

const recentMissionCount = 3

// DashboardService derives the dashboard figures from the caller's missions
// on demand; nothing is stored.
type DashboardService struct {
	missions *MissionService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{missions: NewMissionService(db)}
}

// Summary computes total paid revenue, status counts, the three most recently
// created missions, and twelve monthly paid-revenue buckets for now's year.
// Months without paid revenue are present with a zero total.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.DashboardResponse, error) {
	missions, err := s.missions.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	year := now.Year()
	resp := &dto.DashboardResponse{
		TotalMissions:  len(missions),
		RecentMissions: []dto.MissionResponse{},
		Year:           year,
	}

	var buckets [12]float64
	for i := range missions {
		m := &missions[i]
		switch m.Status {
		case models.StatusPaid:
			resp.PaidMissions++
			resp.TotalRevenue += m.Amount
			d := m.Date
			if d.IsZero() {
				d = m.CreatedAt
			}
			if d.Year() == year {
				buckets[int(d.Month())-1] += m.Amount
			}
		case models.StatusPending:
			resp.PendingMissions++
		}
	}

	// List is already ordered newest first.
	for i := 0; i < len(missions) && i < recentMissionCount; i++ {
		resp.RecentMissions = append(resp.RecentMissions, dto.NewMissionResponse(&missions[i]))
	}

	resp.MonthlyRevenue = make([]dto.MonthBucket, 12)
	for i := 0; i < 12; i++ {
		resp.MonthlyRevenue[i] = dto.MonthBucket{
			Month: format.MonthShort(time.Month(i + 1)),
			Total: buckets[i],
		}
	}

	return resp, nil
}
