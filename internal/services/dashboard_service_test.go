package services

import (
	"testing"
	"time"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
)

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	missions := NewMissionService(db)
	user := registerUser(t, db, "dash@example.com", "FR")
	client := createClient(t, db, user, "Acme")

	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	create := func(title string, amount float64, status, date string) {
		t.Helper()
		_, err := missions.Create(t.Context(), user.ID, "EUR", &dto.MissionRequest{
			Title:    title,
			ClientID: client.ID.String(),
			Amount:   dto.Number(amount),
			Date:     date,
			Status:   status,
		})
		if err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	create("March paid A", 1000, models.StatusPaid, "2026-03-05")
	create("March paid B", 500, models.StatusPaid, "2026-03-20")
	create("Pending job", 200, models.StatusPending, "2026-04-01")
	create("Cancelled job", 900, models.StatusCancelled, "2026-02-01")
	// Paid last year: counts toward total revenue but not this year's chart.
	create("Old paid", 300, models.StatusPaid, "2025-11-10")

	resp, err := svc.Summary(t.Context(), user.ID, now)
	if err != nil {
		t.Fatal(err)
	}

	if resp.TotalRevenue != 1800 {
		t.Errorf("totalRevenue = %v, want 1800", resp.TotalRevenue)
	}
	if resp.TotalMissions != 5 {
		t.Errorf("totalMissions = %d, want 5", resp.TotalMissions)
	}
	if resp.PaidMissions != 3 {
		t.Errorf("paidMissions = %d, want 3", resp.PaidMissions)
	}
	if resp.PendingMissions != 1 {
		t.Errorf("pendingMissions = %d, want 1", resp.PendingMissions)
	}
	if resp.Year != 2026 {
		t.Errorf("year = %d", resp.Year)
	}

	if len(resp.MonthlyRevenue) != 12 {
		t.Fatalf("monthlyRevenue length = %d", len(resp.MonthlyRevenue))
	}
	if resp.MonthlyRevenue[2].Total != 1500 {
		t.Errorf("March total = %v, want 1500", resp.MonthlyRevenue[2].Total)
	}
	if resp.MonthlyRevenue[2].Month != "Mar" {
		t.Errorf("March label = %q", resp.MonthlyRevenue[2].Month)
	}
	if resp.MonthlyRevenue[10].Total != 0 {
		t.Errorf("November total = %v, want 0 (last year excluded)", resp.MonthlyRevenue[10].Total)
	}

	if len(resp.RecentMissions) != 3 {
		t.Fatalf("recentMissions length = %d, want 3", len(resp.RecentMissions))
	}
	// Recent missions come by creation order, newest first.
	if resp.RecentMissions[0].Title != "Old paid" {
		t.Errorf("recent[0] = %q", resp.RecentMissions[0].Title)
	}
	if resp.RecentMissions[2].Title != "Pending job" {
		t.Errorf("recent[2] = %q", resp.RecentMissions[2].Title)
	}
}

func TestDashboardZeroDateFallsBackToCreatedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	user := registerUser(t, db, "fallback@example.com", "FR")
	client := createClient(t, db, user, "Acme")

	// A row without a date buckets under its creation month.
	m := models.Mission{
		ID:       uuid.New(),
		Title:    "Dateless",
		ClientID: client.ID,
		UserID:   user.ID,
		Amount:   400,
		Currency: "EUR",
		Status:   models.StatusPaid,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	resp, err := svc.Summary(t.Context(), user.ID, now)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.MonthlyRevenue[int(now.Month())-1].Total; got != 400 {
		t.Errorf("current month total = %v, want 400", got)
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	user := registerUser(t, db, "empty@example.com", "FR")

	resp, err := svc.Summary(t.Context(), user.ID, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if resp.TotalRevenue != 0 || resp.TotalMissions != 0 {
		t.Errorf("expected zeroes, got %+v", resp)
	}
	if resp.RecentMissions == nil || len(resp.RecentMissions) != 0 {
		t.Errorf("recentMissions should be an empty slice")
	}
	if len(resp.MonthlyRevenue) != 12 {
		t.Errorf("monthlyRevenue length = %d", len(resp.MonthlyRevenue))
	}
}
