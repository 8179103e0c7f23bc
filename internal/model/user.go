package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Preferences is the per-user settings document, stored as JSONB.
type Preferences struct {
	DarkMode                    bool   `json:"darkMode"`
	NotificationsEnabled        bool   `json:"notificationsEnabled"`
	ReminderTime                string `json:"reminderTime,omitempty"` // HH:MM
	PreferredMeditationDuration int    `json:"preferredMeditationDuration,omitempty"`
	WeeklyGoal                  int    `json:"weeklyGoal,omitempty"` // sessions per week
}

// Scan reads the JSONB column.
func (p *Preferences) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*p = Preferences{}
		return nil
	default:
		return fmt.Errorf("Preferences.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(raw, p)
}

// Value serializes the document for the JSONB column.
func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// User maps to the users table.
type User struct {
	UserID         string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username       string       `gorm:"type:varchar(100);not null"                     json:"username"`
	Email          string       `gorm:"type:varchar(255);not null"                     json:"email"`
	ProfilePicture string       `gorm:"type:varchar(500)"                              json:"profile_picture,omitempty"`
	Preferences    *Preferences `gorm:"type:jsonb"                                     json:"preferences,omitempty"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	LastLogin      *time.Time   `json:"last_login,omitempty"`
}

func (User) TableName() string { return "users" }
