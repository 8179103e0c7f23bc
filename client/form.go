package client

// Creation-form defaults.
const (
	DefaultDuration        = 15
	DefaultReminderEnabled = true
)

// ScheduleForm models the new-schedule form: day selection toggles
// independently with no client-side minimum, the server is the gate.
type ScheduleForm struct {
	Title           string
	Time            string
	Duration        float64
	ReminderEnabled bool
	VideoID         string

	days []string
}

// NewScheduleForm returns a form in its reset state.
func NewScheduleForm() *ScheduleForm {
	f := &ScheduleForm{}
	f.Reset()
	return f
}

// Reset restores the defaults and clears the day selection.
func (f *ScheduleForm) Reset() {
	f.Title = ""
	f.Time = ""
	f.Duration = DefaultDuration
	f.ReminderEnabled = DefaultReminderEnabled
	f.VideoID = ""
	f.days = nil
}

// ToggleDay adds the day to the selection, or removes it when already
// selected. Selection order is preserved.
func (f *ScheduleForm) ToggleDay(day string) {
	for i, d := range f.days {
		if d == day {
			f.days = append(f.days[:i], f.days[i+1:]...)
			return
		}
	}
	f.days = append(f.days, day)
}

// Days returns the current selection in toggle order.
func (f *ScheduleForm) Days() []string {
	out := make([]string, len(f.days))
	copy(out, f.days)
	return out
}

// Payload builds the Create body for the given owner.
func (f *ScheduleForm) Payload(userID string) *NewSchedule {
	return &NewSchedule{
		UserID:          userID,
		Title:           f.Title,
		DayOfWeek:       f.Days(),
		Time:            f.Time,
		Duration:        f.Duration,
		ReminderEnabled: f.ReminderEnabled,
		VideoID:         f.VideoID,
	}
}
