package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/model"
	"stillmind/backend/internal/repository"
)

// Achievement thresholds.
const (
	firstWeekStreakDays    = 7
	mindfulnessMasterCount = 30
)

// ProgressService derives meditation progress from the session log.
// Nothing here is stored; every read recomputes from scratch.
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) (*dto.ProgressResponse, error)
}

type progressService struct {
	repo   *repository.Repository
	now    func() time.Time
	logger *zap.Logger
}

// NewProgressService creates the ProgressService instance.
func NewProgressService(repo *repository.Repository, logger *zap.Logger) ProgressService {
	return &progressService{repo: repo, now: time.Now, logger: logger}
}

// ────────────────────── GetProgress ──────────────────────

func (s *progressService) GetProgress(ctx context.Context, userID string) (*dto.ProgressResponse, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	sessions, err := s.repo.Session.ListByUser(ctx, userID, 0)
	if err != nil {
		s.logger.Error("list sessions failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := &dto.ProgressResponse{
		UserID:       userID,
		Achievements: []dto.AchievementResponse{},
	}

	// Weekly goal comes from preferences when the profile exists.
	if user, err := s.repo.User.GetByID(ctx, userID); err == nil {
		if user.Preferences != nil {
			resp.WeeklyGoal = user.Preferences.WeeklyGoal
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("load user failed", zap.String("user_id", userID), zap.Error(err))
	}

	if len(sessions) == 0 {
		return resp, nil
	}

	resp.TotalSessions = len(sessions)
	for _, sess := range sessions {
		resp.TotalMinutes += sess.Duration
	}
	// sessions arrive newest-first
	resp.LastSessionDate = sessions[0].CompletedAt.UTC().Format("2006-01-02")

	days := distinctDays(sessions)
	resp.CurrentStreak = currentStreak(days, s.now().UTC())
	longest, longestEnd := longestStreak(days)
	resp.LongestStreak = longest

	if longest >= firstWeekStreakDays {
		resp.Achievements = append(resp.Achievements, dto.AchievementResponse{
			ID:          "first-week",
			Name:        "First Week Complete",
			Description: "Completed at least one meditation session every day for a week",
			EarnedAt:    longestEnd.Format("2006-01-02"),
		})
	}
	if len(sessions) >= mindfulnessMasterCount {
		// the 30th-oldest session is the one that earned it
		earned := sessions[len(sessions)-mindfulnessMasterCount].CompletedAt
		resp.Achievements = append(resp.Achievements, dto.AchievementResponse{
			ID:          "mindfulness-master",
			Name:        "Mindfulness Master",
			Description: "Completed 30 meditation sessions",
			EarnedAt:    earned.UTC().Format("2006-01-02"),
		})
	}

	return resp, nil
}

// ── internal helpers ──

// distinctDays returns the unique UTC calendar days with at least one
// session, sorted ascending.
func distinctDays(sessions []model.MeditationSession) []time.Time {
	seen := make(map[string]time.Time, len(sessions))
	for _, sess := range sessions {
		day := sess.CompletedAt.UTC().Truncate(24 * time.Hour)
		seen[day.Format("2006-01-02")] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// currentStreak counts consecutive days ending today or yesterday.
// A streak broken before yesterday is zero.
func currentStreak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	today := now.Truncate(24 * time.Hour)
	last := days[len(days)-1]
	gap := int(today.Sub(last).Hours() / 24)
	if gap > 1 {
		return 0
	}
	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if int(days[i].Sub(days[i-1]).Hours()/24) != 1 {
			break
		}
		streak++
	}
	return streak
}

// longestStreak returns the longest run of consecutive days and the day
// that run ended on.
func longestStreak(days []time.Time) (int, time.Time) {
	if len(days) == 0 {
		return 0, time.Time{}
	}
	longest, run := 1, 1
	end := days[0]
	for i := 1; i < len(days); i++ {
		if int(days[i].Sub(days[i-1]).Hours()/24) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
			end = days[i]
		}
	}
	return longest, end
}
