package service

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDays collapses a day set into a display label: the full week is
// "Every day", exactly the five weekdays is "Weekdays", exactly the two
// weekend days is "Weekends", anything else joins the days in input order.
func FormatDays(days []string) string {
	if len(days) == 7 {
		return "Every day"
	}

	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	weekend := []string{"Saturday", "Sunday"}

	if len(days) == 5 && containsAll(days, weekdays) {
		return "Weekdays"
	}
	if len(days) == 2 && containsAll(days, weekend) {
		return "Weekends"
	}

	return strings.Join(days, ", ")
}

func containsAll(haystack, needles []string) bool {
	set := make(map[string]bool, len(haystack))
	for _, d := range haystack {
		set[d] = true
	}
	for _, n := range needles {
		if !set[n] {
			return false
		}
	}
	return true
}

// FormatTime converts 24-hour "HH:MM" to 12-hour with an AM/PM suffix.
// Hour 0 displays as 12; minutes pass through verbatim.
func FormatTime(t string) string {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], period)
}
