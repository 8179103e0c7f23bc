package dto

// ── schedule module DTOs ──
//
// The schedule payload deliberately carries no gin binding tags: the
// service layer runs the field checks itself, in a fixed order, so the
// first violation is the one reported. Pointer fields distinguish
// "absent" from zero values (reminderEnabled=false and duration=0 are
// both well-formed JSON that must reach the validator).

// SchedulePayload is the caller-supplied schedule body, without id.
type SchedulePayload struct {
	UserID          string   `json:"userId"`
	Title           string   `json:"title"`
	DayOfWeek       []string `json:"dayOfWeek"`
	Time            string   `json:"time"`
	Duration        *float64 `json:"duration"`
	ReminderEnabled *bool    `json:"reminderEnabled"`
	VideoID         string   `json:"videoId"`
}

// UpdateScheduleRequest is the PUT body: the target id plus the full
// replacement payload.
type UpdateScheduleRequest struct {
	ID string `json:"id"`
	SchedulePayload
}

// ScheduleListRequest is the List query.
type ScheduleListRequest struct {
	UserID string `form:"userId"`
}

// ScheduleResponse is a full schedule as returned to clients. DaysLabel
// and DisplayTime are the presentation strings so front ends never
// reimplement the formatting rules.
type ScheduleResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Title           string   `json:"title"`
	DayOfWeek       []string `json:"dayOfWeek"`
	Time            string   `json:"time"`
	Duration        float64  `json:"duration"`
	ReminderEnabled bool     `json:"reminderEnabled"`
	VideoID         string   `json:"videoId,omitempty"`
	DaysLabel       string   `json:"daysLabel"`
	DisplayTime     string   `json:"displayTime"`
}

// DeleteScheduleResponse confirms a deletion.
type DeleteScheduleResponse struct {
	Message string `json:"message"`
}
