package dto

// ── user module DTOs ──

// UpdatePreferencesRequest replaces a user's preferences document.
type UpdatePreferencesRequest struct {
	DarkMode                    *bool  `json:"dark_mode"`
	NotificationsEnabled        *bool  `json:"notifications_enabled"`
	ReminderTime                string `json:"reminder_time"                 binding:"omitempty,len=5"`
	PreferredMeditationDuration int    `json:"preferred_meditation_duration" binding:"omitempty,gt=0"`
	WeeklyGoal                  int    `json:"weekly_goal"                   binding:"omitempty,gte=0"`
}

// PreferencesResponse is the settings document.
type PreferencesResponse struct {
	DarkMode                    bool   `json:"dark_mode"`
	NotificationsEnabled        bool   `json:"notifications_enabled"`
	ReminderTime                string `json:"reminder_time,omitempty"`
	PreferredMeditationDuration int    `json:"preferred_meditation_duration,omitempty"`
	WeeklyGoal                  int    `json:"weekly_goal,omitempty"`
}

// UserResponse is one user profile.
type UserResponse struct {
	ID             string               `json:"id"`
	Username       string               `json:"username"`
	Email          string               `json:"email"`
	ProfilePicture string               `json:"profile_picture,omitempty"`
	Preferences    *PreferencesResponse `json:"preferences,omitempty"`
	CreatedAt      string               `json:"created_at"`
	LastLogin      string               `json:"last_login,omitempty"`
}
