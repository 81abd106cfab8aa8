package app

import (
	"log/slog"
	"os"

	"feedapi/internal/config"
	"feedapi/internal/database"
	"feedapi/internal/repository"
	"feedapi/internal/service"
	"feedapi/internal/storage"
)

// App wires the external collaborators (Postgres, MinIO) into repositories
// and services. Startup failures are fatal.
func App(cfg *config.Config, logger *slog.Logger) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logger.Error("could not initialize MinIO", "error", err)
		os.Exit(1)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, logger)

	return db, repo, services
}
