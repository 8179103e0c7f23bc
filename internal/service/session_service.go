package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/model"
	"stillmind/backend/internal/repository"
)

// ── session module business errors ──

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCompletedAt = errors.New("completed_at must be RFC 3339")
)

// SessionService manages the completed-session log.
type SessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SessionResponse, error)
	List(ctx context.Context, req *dto.SessionListRequest) ([]dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService creates the SessionService instance.
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	completedAt := time.Now().UTC()
	if req.CompletedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.CompletedAt)
		if err != nil {
			return nil, ErrInvalidCompletedAt
		}
		completedAt = parsed
	}

	session := &model.MeditationSession{
		UserID:      req.UserID,
		Title:       req.Title,
		Duration:    req.Duration,
		CompletedAt: completedAt,
		Rating:      req.Rating,
		Notes:       req.Notes,
		VideoID:     req.VideoID,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		return nil, err
	}

	return toSessionResponse(session), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *sessionService) GetByID(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("load session failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toSessionResponse(session), nil
}

// ────────────────────── List ──────────────────────

func (s *sessionService) List(ctx context.Context, req *dto.SessionListRequest) ([]dto.SessionResponse, error) {
	if req.UserID == "" {
		return nil, ErrUserIDRequired
	}

	sessions, err := s.repo.Session.ListByUser(ctx, req.UserID, req.Limit)
	if err != nil {
		s.logger.Error("list sessions failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *toSessionResponse(&sessions[i]))
	}

	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Session.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("delete session failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toSessionResponse(m *model.MeditationSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:          m.SessionID,
		UserID:      m.UserID,
		Title:       m.Title,
		Duration:    m.Duration,
		CompletedAt: m.CompletedAt.UTC().Format(time.RFC3339),
		Rating:      m.Rating,
		Notes:       m.Notes,
		VideoID:     m.VideoID,
	}
}
