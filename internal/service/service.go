package service

import (
	"go.uber.org/zap"

	"stillmind/backend/config"
	"stillmind/backend/internal/repository"
	"stillmind/backend/pkg/redis"
)

// Service aggregates every service behind one injection point.
type Service struct {
	Schedule ScheduleService
	Session  SessionService
	Favorite FavoriteService
	Progress ProgressService
	User     UserService
	Export   ExportService
}

// NewService wires the services. rdb may be nil; caching then degrades
// to direct store reads.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Schedule: NewScheduleService(repo, rdb, logger),
		Session:  NewSessionService(repo, logger),
		Favorite: NewFavoriteService(repo, cfg.Video.EmbedBaseURL, logger),
		Progress: NewProgressService(repo, logger),
		User:     NewUserService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
