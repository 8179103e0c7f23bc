package model

import "time"

// FavoriteVideo is a bookmarked meditation video.
// One row per user+videoId, enforced by uq_favorite_user_video.
type FavoriteVideo struct {
	FavoriteID   string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"favorite_id"`
	UserID       string      `gorm:"type:varchar(64);not null"                      json:"user_id"`
	VideoID      string      `gorm:"type:varchar(64);not null"                      json:"video_id"`
	Title        string      `gorm:"type:varchar(200);not null"                     json:"title"`
	ThumbnailURL string      `gorm:"type:varchar(500)"                              json:"thumbnail_url,omitempty"`
	Duration     int         `gorm:"not null;default:0"                             json:"duration"` // minutes
	Tags         StringArray `gorm:"type:text"                                      json:"tags,omitempty"`
	AddedAt      time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"added_at"`
}

func (FavoriteVideo) TableName() string { return "favorite_videos" }
