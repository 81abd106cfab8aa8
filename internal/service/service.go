package service

import (
	"log/slog"

	"feedapi/internal/auth"
	"feedapi/internal/config"
	"feedapi/internal/repository"
	"feedapi/internal/storage"
)

type Service struct {
	Auth AuthService
	Feed FeedService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage, logger *slog.Logger) *Service {
	codec := auth.NewTokenCodec(cfg.JWTSecretKey, cfg.TokenDuration)

	return &Service{
		Auth: NewAuthService(repo.User, codec),
		Feed: NewFeedService(repo.Post, repo.User, storage, logger),
	}
}
