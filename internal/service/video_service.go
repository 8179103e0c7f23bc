package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/model"
	"stillmind/backend/internal/player"
	"stillmind/backend/internal/repository"
)

// ── favorite-video module business errors ──

var (
	ErrFavoriteNotFound = errors.New("favorite video not found")
	ErrFavoriteExists   = errors.New("video already in favorites")
)

// FavoriteService manages bookmarked meditation videos.
type FavoriteService interface {
	Create(ctx context.Context, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error)
	List(ctx context.Context, req *dto.FavoriteListRequest) ([]dto.FavoriteResponse, error)
	Delete(ctx context.Context, id string) error
}

type favoriteService struct {
	repo         *repository.Repository
	embedBaseURL string
	logger       *zap.Logger
}

// NewFavoriteService creates the FavoriteService instance.
func NewFavoriteService(repo *repository.Repository, embedBaseURL string, logger *zap.Logger) FavoriteService {
	return &favoriteService{repo: repo, embedBaseURL: embedBaseURL, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *favoriteService) Create(ctx context.Context, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error) {
	_, err := s.repo.Favorite.GetByUserAndVideo(ctx, req.UserID, req.VideoID)
	if err == nil {
		return nil, ErrFavoriteExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup favorite failed", zap.Error(err))
		return nil, err
	}

	fav := &model.FavoriteVideo{
		UserID:       req.UserID,
		VideoID:      req.VideoID,
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		Tags:         req.Tags,
		AddedAt:      time.Now().UTC(),
	}

	if err := s.repo.Favorite.Create(ctx, fav); err != nil {
		s.logger.Error("create favorite failed", zap.Error(err))
		return nil, err
	}

	return s.toFavoriteResponse(fav), nil
}

// ────────────────────── List ──────────────────────

func (s *favoriteService) List(ctx context.Context, req *dto.FavoriteListRequest) ([]dto.FavoriteResponse, error) {
	if req.UserID == "" {
		return nil, ErrUserIDRequired
	}

	favs, err := s.repo.Favorite.ListByUser(ctx, req.UserID)
	if err != nil {
		s.logger.Error("list favorites failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.FavoriteResponse, 0, len(favs))
	for i := range favs {
		result = append(result, *s.toFavoriteResponse(&favs[i]))
	}

	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *favoriteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Favorite.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		s.logger.Error("delete favorite failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func (s *favoriteService) toFavoriteResponse(m *model.FavoriteVideo) *dto.FavoriteResponse {
	return &dto.FavoriteResponse{
		ID:           m.FavoriteID,
		UserID:       m.UserID,
		VideoID:      m.VideoID,
		Title:        m.Title,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Tags:         m.Tags,
		AddedAt:      m.AddedAt.UTC().Format(time.RFC3339),
		EmbedURL:     player.EmbedURL(s.embedBaseURL, m.VideoID),
	}
}
