package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justgohire/jobboard/internal/config"
	"github.com/justgohire/jobboard/internal/models"
)

// Connect opens the Postgres connection pool, verifies it with a ping and
// runs the schema migration. The returned handle is owned by the caller and
// injected into whatever needs it; there is no package-level singleton.
func Connect(cfg config.DBConfig, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database %q on %s:%d: %w", cfg.Name, cfg.Host, cfg.Port, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.AutoMigrate(&models.Job{}); err != nil {
		return nil, fmt.Errorf("migrate jobs table: %w", err)
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Msg("database connection established")
	return db, nil
}

// Ping reports whether the pool can still reach the database. The health
// endpoint uses it as the readiness signal.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
