package leave

import "time"

// BusinessDays counts the weekdays from start through end, inclusive.
// Holidays are not excluded; they are surfaced on the calendar instead of
// shortening the requested span.
func BusinessDays(start, end time.Time) int {
	if start.After(end) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
