package model

import "time"

// MeditationSession is one completed meditation, logged after the fact.
type MeditationSession struct {
	SessionID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	UserID      string    `gorm:"type:varchar(64);not null;index"                json:"user_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Duration    int       `gorm:"not null"                                       json:"duration"` // minutes
	CompletedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"completed_at"`
	Rating      *int      `gorm:"type:smallint"                                  json:"rating,omitempty"` // 1-5
	Notes       string    `gorm:"type:varchar(1000)"                             json:"notes,omitempty"`
	VideoID     string    `gorm:"type:varchar(64)"                               json:"video_id,omitempty"`
}

func (MeditationSession) TableName() string { return "meditation_sessions" }
