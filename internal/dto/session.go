package dto

// ── meditation-session module DTOs ──

// CreateSessionRequest logs a completed meditation.
type CreateSessionRequest struct {
	UserID      string `json:"user_id"      binding:"required"`
	Title       string `json:"title"        binding:"required,max=200"`
	Duration    int    `json:"duration"     binding:"required,gt=0"`
	CompletedAt string `json:"completed_at" binding:"omitempty"` // RFC 3339; defaults to now
	Rating      *int   `json:"rating"       binding:"omitempty,min=1,max=5"`
	Notes       string `json:"notes"        binding:"omitempty,max=1000"`
	VideoID     string `json:"video_id"     binding:"omitempty,max=64"`
}

// SessionListRequest is the session list query.
type SessionListRequest struct {
	UserID string `form:"user_id"`
	Limit  int    `form:"limit"`
}

// SessionResponse is one completed session.
type SessionResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	CompletedAt string `json:"completed_at"`
	Rating      *int   `json:"rating,omitempty"`
	Notes       string `json:"notes,omitempty"`
	VideoID     string `json:"video_id,omitempty"`
}
