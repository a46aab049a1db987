package timegrid

import "time"

// WeekStart returns Monday 00:00 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	// time.Weekday has Sunday=0; the planner week starts on Monday.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// DayOffset returns the whole-day offset of t from weekStart. Events with an
// offset outside [0,6] fall outside the displayed week.
func DayOffset(weekStart, t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, weekStart.Location())
	return int(day.Sub(weekStart).Hours() / 24)
}

// SlotTime resolves a dayIndex + "HH:MM" slot against a week start into an
// absolute timestamp in the week's location.
func SlotTime(weekStart time.Time, dayIndex int, timeSlot string) (time.Time, error) {
	h, m, err := parseSlot(timeSlot)
	if err != nil {
		return time.Time{}, err
	}
	day := weekStart.AddDate(0, 0, dayIndex)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, weekStart.Location()), nil
}
