package dto

// ── favorite-video module DTOs ──

// CreateFavoriteRequest bookmarks a video.
type CreateFavoriteRequest struct {
	UserID       string   `json:"user_id"       binding:"required"`
	VideoID      string   `json:"video_id"      binding:"required,max=64"`
	Title        string   `json:"title"         binding:"required,max=200"`
	ThumbnailURL string   `json:"thumbnail_url" binding:"omitempty,max=500"`
	Duration     int      `json:"duration"      binding:"omitempty,gte=0"`
	Tags         []string `json:"tags"          binding:"omitempty,dive,max=50"`
}

// FavoriteListRequest is the favorites list query.
type FavoriteListRequest struct {
	UserID string `form:"user_id"`
}

// FavoriteResponse is one bookmarked video.
type FavoriteResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Duration     int      `json:"duration"`
	Tags         []string `json:"tags,omitempty"`
	AddedAt      string   `json:"added_at"`
	EmbedURL     string   `json:"embed_url"`
}
