package repository

import (
	"context"

	"gorm.io/gorm"

	"stillmind/backend/internal/model"
)

// SessionRepository is the data-access interface for the completed-session log.
type SessionRepository interface {
	Create(ctx context.Context, session *model.MeditationSession) error
	GetByID(ctx context.Context, id string) (*model.MeditationSession, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.MeditationSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates the SessionRepository implementation.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.MeditationSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.MeditationSession, error) {
	var session model.MeditationSession
	err := r.db.WithContext(ctx).
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.MeditationSession, error) {
	var sessions []model.MeditationSession
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("session_id = ?", id).
		Delete(&model.MeditationSession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
