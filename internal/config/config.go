package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full process configuration, read once at startup.
//
// Environment variables:
//   - PG_USER, PG_HOST, PG_NAME, PG_PASSWORD, PG_PORT: database connection
//   - PORT: HTTP listen port (default 5000)
//   - FRONTEND_ORIGIN: origin allowed by CORS (default http://localhost:5173)
//   - UPLOAD_DIR: destination directory for logo uploads (default uploads)
//   - UPLOAD_MAX_BYTES: upload size limit (default 10 MiB)
type Config struct {
	DB      DBConfig
	HTTP    HTTPConfig
	Uploads UploadConfig
}

type DBConfig struct {
	User     string
	Host     string
	Name     string
	Password string
	Port     int
}

// DSN builds the Postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port)
}

type HTTPConfig struct {
	Port           int
	FrontendOrigin string
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// Load reads configuration from the environment. Missing required database
// settings are a configuration fault and fail the load; the process must not
// start half-configured.
func Load() (Config, error) {
	dbPort, err := envInt("PG_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	httpPort, err := envInt("PORT", 5000)
	if err != nil {
		return Config{}, err
	}
	maxBytes, err := envInt("UPLOAD_MAX_BYTES", 10<<20)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DB: DBConfig{
			User:     envOr("PG_USER", "postgres"),
			Host:     envOr("PG_HOST", "localhost"),
			Name:     envOr("PG_NAME", "db"),
			Password: os.Getenv("PG_PASSWORD"),
			Port:     dbPort,
		},
		HTTP: HTTPConfig{
			Port:           httpPort,
			FrontendOrigin: envOr("FRONTEND_ORIGIN", "http://localhost:5173"),
		},
		Uploads: UploadConfig{
			Dir:      envOr("UPLOAD_DIR", "uploads"),
			MaxBytes: int64(maxBytes),
		},
	}

	if cfg.DB.User == "" || cfg.DB.Name == "" || cfg.DB.Password == "" {
		return Config{}, fmt.Errorf("missing required database configuration: PG_USER, PG_NAME and PG_PASSWORD must be set")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
