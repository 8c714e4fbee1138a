package services

import (
	"errors"
	"testing"
	"time"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/google/uuid"
)

func TestMissionCreateStampsCurrency(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	user := registerUser(t, db, "stamp@example.com", "FR")
	client := createClient(t, db, user, "Acme")

	mission, err := svc.Create(t.Context(), user.ID, "EUR", &dto.MissionRequest{
		Title:    "Refonte du site",
		ClientID: client.ID.String(),
		Amount:   1200.5,
		Date:     "2026-03-01",
		Status:   models.StatusPending,
		Comment:  "Acompte reçu",
	})
	if err != nil {
		t.Fatal(err)
	}

	if mission.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", mission.Currency)
	}
	if mission.Amount != 1200.5 {
		t.Errorf("amount = %v", mission.Amount)
	}
	if mission.Status != models.StatusPending {
		t.Errorf("status = %q", mission.Status)
	}
	if mission.Client == nil || mission.Client.Name != "Acme" {
		t.Errorf("client summary = %v", mission.Client)
	}
	if !mission.Date.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", mission.Date)
	}
}

func TestMissionCreateRejectsForeignClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	alice := registerUser(t, db, "alice@example.com", "FR")
	bob := registerUser(t, db, "bob@example.com", "BE")
	bobsClient := createClient(t, db, bob, "Bob's client")

	_, err := svc.Create(t.Context(), alice.ID, "EUR", &dto.MissionRequest{
		Title:    "Poaching attempt",
		ClientID: bobsClient.ID.String(),
		Amount:   500,
		Date:     "2026-02-01",
		Status:   models.StatusPending,
	})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
}

func TestMissionCreateInvalidDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	user := registerUser(t, db, "date@example.com", "FR")
	client := createClient(t, db, user, "Acme")

	_, err := svc.Create(t.Context(), user.ID, "EUR", &dto.MissionRequest{
		Title:    "Bad date",
		ClientID: client.ID.String(),
		Amount:   100,
		Date:     "01/03/2026",
		Status:   models.StatusPending,
	})
	if !errors.Is(err, dto.ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestMissionUpdateKeepsStampedCurrency(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	user := registerUser(t, db, "keep@example.com", "FR")
	client := createClient(t, db, user, "Acme")

	mission, err := svc.Create(t.Context(), user.ID, "EUR", &dto.MissionRequest{
		Title:    "Initial",
		ClientID: client.ID.String(),
		Amount:   800,
		Date:     "2026-01-05",
		Status:   models.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	// The user's currency may have changed since creation; the mission keeps
	// the currency it was stamped with.
	updated, err := svc.Update(t.Context(), user.ID, mission.ID, &dto.MissionRequest{
		Title:    "Initial, revised",
		ClientID: client.ID.String(),
		Amount:   950,
		Date:     "2026-01-20",
		Status:   models.StatusPaid,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", updated.Currency)
	}
	if updated.Amount != 950 || updated.Status != models.StatusPaid {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Client == nil || updated.Client.ID != client.ID {
		t.Errorf("client summary = %v", updated.Client)
	}
}

func TestMissionUpdateReassignsOnlyOwnedClients(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	alice := registerUser(t, db, "alice@example.com", "FR")
	bob := registerUser(t, db, "bob@example.com", "BE")
	aliceClient := createClient(t, db, alice, "Alice's client")
	bobsClient := createClient(t, db, bob, "Bob's client")

	mission, err := svc.Create(t.Context(), alice.ID, "EUR", &dto.MissionRequest{
		Title:    "Logo",
		ClientID: aliceClient.ID.String(),
		Amount:   300,
		Date:     "2026-02-10",
		Status:   models.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Update(t.Context(), alice.ID, mission.ID, &dto.MissionRequest{
		Title:    "Logo",
		ClientID: bobsClient.ID.String(),
		Amount:   300,
		Date:     "2026-02-10",
		Status:   models.StatusPending,
	})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
}

func TestMissionCrossUserInvisible(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	alice := registerUser(t, db, "alice@example.com", "FR")
	bob := registerUser(t, db, "bob@example.com", "BE")
	client := createClient(t, db, alice, "Acme")

	mission, err := svc.Create(t.Context(), alice.ID, "EUR", &dto.MissionRequest{
		Title:    "Secret work",
		ClientID: client.ID.String(),
		Amount:   100,
		Date:     "2026-01-01",
		Status:   models.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(t.Context(), bob.ID, mission.ID, &dto.MissionRequest{
		Title:    "Takeover",
		ClientID: client.ID.String(),
		Amount:   1,
		Date:     "2026-01-01",
		Status:   models.StatusPending,
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: err = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(t.Context(), bob.ID, mission.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: err = %v, want ErrNotFound", err)
	}

	list, err := svc.List(t.Context(), bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("bob sees %d missions", len(list))
	}
}

func TestMissionDeleteTwice(t *testing.T) {
	db := newTestDB(t)
	svc := NewMissionService(db)
	user := registerUser(t, db, "del@example.com", "FR")
	client := createClient(t, db, user, "Acme")

	mission, err := svc.Create(t.Context(), user.ID, "EUR", &dto.MissionRequest{
		Title:    "Short job",
		ClientID: client.ID.String(),
		Amount:   50,
		Date:     "2026-01-01",
		Status:   models.StatusCancelled,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(t.Context(), user.ID, mission.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(t.Context(), user.ID, mission.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(t.Context(), user.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("random id: err = %v, want ErrNotFound", err)
	}
}
