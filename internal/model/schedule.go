package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Weekdays is the closed 7-value enumeration every dayOfWeek element is
// validated against. Order matters for exports and display.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// IsWeekday reports whether day belongs to the enumeration.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduleDocument is the JSON payload of a schedule row. Everything
// except the row id lives here. VideoID carries omitempty so an absent
// video is omitted from the stored document, never kept as an empty
// placeholder.
type ScheduleDocument struct {
	UserID          string   `json:"userId"`
	Title           string   `json:"title"`
	DayOfWeek       []string `json:"dayOfWeek"`
	Time            string   `json:"time"`
	Duration        float64  `json:"duration"`
	ReminderEnabled bool     `json:"reminderEnabled"`
	VideoID         string   `json:"videoId,omitempty"`
}

// Scan reads the JSONB column into the document.
func (d *ScheduleDocument) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*d = ScheduleDocument{}
		return nil
	default:
		return fmt.Errorf("ScheduleDocument.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(raw, d)
}

// Value serializes the document for the JSONB column.
func (d ScheduleDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// ScheduleRecord is a row of the schedules table: an opaque store-assigned
// identifier plus the JSON document holding all other fields.
type ScheduleRecord struct {
	ID    string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Value ScheduleDocument `gorm:"type:jsonb;not null"                            json:"value"`
}

func (ScheduleRecord) TableName() string { return "schedules" }
