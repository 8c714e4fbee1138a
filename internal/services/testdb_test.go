package services

import (
	"strings"
	"testing"
	"time"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/freelansy/freelansy/internal/database"
	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database named after the test, with
// foreign keys on so the client→mission cascade behaves like production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		SessionTTL:    time.Hour,
		SessionCookie: "freelansy_session",
	}
}

func registerUser(t *testing.T, db *gorm.DB, email, country string) *models.User {
	t.Helper()
	user, err := NewAuthService(db, testConfig()).Register(&dto.RegisterRequest{
		Name:           "Test User",
		Email:          email,
		Password:       "password123",
		Country:        country,
		FreelancerType: "developer",
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func createClient(t *testing.T, db *gorm.DB, user *models.User, name string) *models.Client {
	t.Helper()
	client, err := NewClientService(db).Create(t.Context(), user.ID, &dto.ClientRequest{Name: name})
	if err != nil {
		t.Fatalf("create client %s: %v", name, err)
	}
	return client
}
