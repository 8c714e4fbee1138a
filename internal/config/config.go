package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Server
	Port        string `env:"PORT, default=8080"`
	AppEnv      string `env:"APP_ENV, default=development"`
	CORSOrigins string `env:"CORS_ORIGINS, default=*"`

	// Database. Driver is postgres in production; sqlite is handy for local
	// runs and is what the test suite uses.
	DBDriver   string `env:"DB_DRIVER, default=postgres"`
	DBHost     string `env:"DB_HOST, default=localhost"`
	DBPort     string `env:"DB_PORT, default=5432"`
	DBUser     string `env:"DB_USER, default=postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME, default=freelansy"`
	DBSSLMode  string `env:"DB_SSLMODE, default=disable"`
	SQLitePath string `env:"SQLITE_PATH, default=data/freelansy.db"`

	// Session
	JWTSecret     string        `env:"JWT_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=72h"`
	SessionCookie string        `env:"SESSION_COOKIE, default=freelansy_session"`
	CookieSecure  bool          `env:"COOKIE_SECURE, default=false"`

	// Error tracking
	SentryDSN string `env:"SENTRY_DSN"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}
