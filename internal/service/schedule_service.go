package service

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/model"
	"stillmind/backend/internal/repository"
	"stillmind/backend/pkg/redis"
)

// ── schedule module business errors ──
//
// The first four map to 400 (invalid request), ErrScheduleNotFound to
// 404. Anything else bubbling out of a method is a store failure.

var (
	ErrUserIDRequired     = errors.New("userId is required")
	ErrScheduleIDRequired = errors.New("schedule id is required")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidDayOfWeek   = errors.New("invalid dayOfWeek values")
	ErrInvalidTimeFormat  = errors.New("time must be in HH:MM format")
	ErrInvalidDuration    = errors.New("duration must be a positive number")
	ErrScheduleNotFound   = errors.New("schedule not found")
)

// timePattern accepts zero-padded 24-hour wall-clock times, 00:00-23:59.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ScheduleService is the schedule business interface.
type ScheduleService interface {
	List(ctx context.Context, userID string) ([]dto.ScheduleResponse, error)
	Create(ctx context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, id string, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	repo   *repository.Repository
	rdb    *redis.Client // nil disables caching
	logger *zap.Logger
}

// NewScheduleService creates the ScheduleService instance.
func NewScheduleService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, rdb: rdb, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *scheduleService) List(ctx context.Context, userID string) ([]dto.ScheduleResponse, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	if s.rdb != nil {
		var cached []dto.ScheduleResponse
		if err := s.rdb.GetScheduleList(ctx, userID, &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.repo.Schedule.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list schedules failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduleResponse, 0, len(records))
	for i := range records {
		result = append(result, *toScheduleResponse(&records[i]))
	}

	if s.rdb != nil {
		if err := s.rdb.SetScheduleList(ctx, userID, result); err != nil {
			s.logger.Warn("cache schedule list failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
	if err := validateSchedulePayload(payload); err != nil {
		return nil, err
	}

	record := &model.ScheduleRecord{Value: toScheduleDocument(payload)}
	if err := s.repo.Schedule.Create(ctx, record); err != nil {
		s.logger.Error("create schedule failed", zap.Error(err))
		return nil, err
	}

	s.invalidateList(ctx, payload.UserID)

	return toScheduleResponse(record), nil
}

// ────────────────────── Update ──────────────────────

// Update confirms the record exists, then replaces the whole stored
// document. The replacement payload is validated with the Create rules;
// the existence check runs first so an unknown id reports not-found
// before any shape complaint.
func (s *scheduleService) Update(ctx context.Context, id string, payload *dto.SchedulePayload) (*dto.ScheduleResponse, error) {
	if id == "" {
		return nil, ErrScheduleIDRequired
	}

	existing, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("load schedule failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := validateSchedulePayload(payload); err != nil {
		return nil, err
	}

	doc := toScheduleDocument(payload)
	if err := s.repo.Schedule.Replace(ctx, id, doc); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("replace schedule failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateList(ctx, existing.Value.UserID)
	if payload.UserID != existing.Value.UserID {
		s.invalidateList(ctx, payload.UserID)
	}

	return toScheduleResponse(&model.ScheduleRecord{ID: id, Value: doc}), nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrScheduleIDRequired
	}

	existing, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("load schedule failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("delete schedule failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.invalidateList(ctx, existing.Value.UserID)

	return nil
}

// ── internal helpers ──

// validateSchedulePayload runs the field checks in a fixed order and
// reports the first violation:
//  1. required presence (reminderEnabled must be an explicit boolean,
//     so false passes; duration 0 reaches the range check below)
//  2. dayOfWeek non-empty, every element in the 7-day enumeration
//  3. time matches HH:MM, 00:00-23:59
//  4. duration strictly positive
func validateSchedulePayload(p *dto.SchedulePayload) error {
	if p.UserID == "" || p.Title == "" || p.DayOfWeek == nil || p.Time == "" ||
		p.Duration == nil || p.ReminderEnabled == nil {
		return ErrMissingFields
	}

	if len(p.DayOfWeek) == 0 {
		return ErrInvalidDayOfWeek
	}
	for _, day := range p.DayOfWeek {
		if !model.IsWeekday(day) {
			return ErrInvalidDayOfWeek
		}
	}

	if !timePattern.MatchString(p.Time) {
		return ErrInvalidTimeFormat
	}

	if *p.Duration <= 0 {
		return ErrInvalidDuration
	}

	return nil
}

func toScheduleDocument(p *dto.SchedulePayload) model.ScheduleDocument {
	return model.ScheduleDocument{
		UserID:          p.UserID,
		Title:           p.Title,
		DayOfWeek:       p.DayOfWeek,
		Time:            p.Time,
		Duration:        *p.Duration,
		ReminderEnabled: *p.ReminderEnabled,
		VideoID:         p.VideoID, // empty stays omitted via omitempty
	}
}

// toScheduleResponse merges the row id over the document. The row id
// always wins; a stray id inside the document never surfaces.
func toScheduleResponse(r *model.ScheduleRecord) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:              r.ID,
		UserID:          r.Value.UserID,
		Title:           r.Value.Title,
		DayOfWeek:       r.Value.DayOfWeek,
		Time:            r.Value.Time,
		Duration:        r.Value.Duration,
		ReminderEnabled: r.Value.ReminderEnabled,
		VideoID:         r.Value.VideoID,
		DaysLabel:       FormatDays(r.Value.DayOfWeek),
		DisplayTime:     FormatTime(r.Value.Time),
	}
}

func (s *scheduleService) invalidateList(ctx context.Context, userID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.InvalidateScheduleList(ctx, userID); err != nil {
		s.logger.Warn("invalidate schedule cache failed", zap.String("user_id", userID), zap.Error(err))
	}
}
