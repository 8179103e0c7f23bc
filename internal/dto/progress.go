package dto

// ── progress module DTOs ──

// AchievementResponse is one earned achievement.
type AchievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EarnedAt    string `json:"earned_at"`
}

// ProgressResponse is the computed meditation progress for a user.
// Never stored; derived from the session log on every read.
type ProgressResponse struct {
	UserID          string                `json:"user_id"`
	TotalSessions   int                   `json:"total_sessions"`
	TotalMinutes    int                   `json:"total_minutes"`
	CurrentStreak   int                   `json:"current_streak"`
	LongestStreak   int                   `json:"longest_streak"`
	LastSessionDate string                `json:"last_session_date,omitempty"`
	WeeklyGoal      int                   `json:"weekly_goal,omitempty"`
	Achievements    []AchievementResponse `json:"achievements"`
}
