package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/justgohire/jobboard/internal/config"
	"github.com/justgohire/jobboard/internal/database"
	"github.com/justgohire/jobboard/internal/handlers"
	"github.com/justgohire/jobboard/internal/services"
	"github.com/justgohire/jobboard/internal/uploads"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Uploads.Dir).Msg("upload directory not writable")
	}

	jobService := services.NewJobService(db)
	uploadStore := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	jobHandler := handlers.NewJobHandler(jobService, uploadStore, logger)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.HTTP.FrontendOrigin}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// stored logos are served straight from disk
	r.Static("/uploads", cfg.Uploads.Dir)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)
		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/jobs", jobHandler.CreateJob)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
