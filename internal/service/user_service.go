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

// ── user module business errors ──

var ErrUserNotFound = errors.New("user not found")

// UserService exposes read access to profiles and preference updates.
// There is no registration path; the API trusts caller-supplied user
// identifiers throughout.
type UserService interface {
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	UpdatePreferences(ctx context.Context, id string, req *dto.UpdatePreferencesRequest) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService instance.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── GetByID ──────────────────────

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── UpdatePreferences ──────────────────────

func (s *userService) UpdatePreferences(ctx context.Context, id string, req *dto.UpdatePreferencesRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	prefs := user.Preferences
	if prefs == nil {
		prefs = &model.Preferences{}
	}
	if req.DarkMode != nil {
		prefs.DarkMode = *req.DarkMode
	}
	if req.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.ReminderTime != "" {
		if !timePattern.MatchString(req.ReminderTime) {
			return nil, ErrInvalidTimeFormat
		}
		prefs.ReminderTime = req.ReminderTime
	}
	if req.PreferredMeditationDuration > 0 {
		prefs.PreferredMeditationDuration = req.PreferredMeditationDuration
	}
	if req.WeeklyGoal > 0 {
		prefs.WeeklyGoal = req.WeeklyGoal
	}

	if err := s.repo.User.UpdatePreferences(ctx, id, prefs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("update preferences failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	user.Preferences = prefs
	return toUserResponse(user), nil
}

// ── internal helpers ──

func toUserResponse(u *model.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:             u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.UTC().Format(time.RFC3339)
	}
	if u.Preferences != nil {
		resp.Preferences = &dto.PreferencesResponse{
			DarkMode:                    u.Preferences.DarkMode,
			NotificationsEnabled:        u.Preferences.NotificationsEnabled,
			ReminderTime:                u.Preferences.ReminderTime,
			PreferredMeditationDuration: u.Preferences.PreferredMeditationDuration,
			WeeklyGoal:                  u.Preferences.WeeklyGoal,
		}
	}
	return resp
}
