package model

// Task is work not yet placed on the grid. Owned by the persistent store;
// the engine holds a read-through copy refreshed by the store subscription.
type Task struct {
	ID           string
	Title        string
	CategoryID   string
	DurationMins int
	Subtitle     string
	Notes        string // opaque rich-text markup
	IsAllDay     bool
}

// ScheduledEvent is a task placed on the grid for the displayed week. It
// lives only in engine memory; an id is either unassigned (Task) or
// scheduled (ScheduledEvent), never both.
type ScheduledEvent struct {
	Task
	DayIndex int    // 0 = Monday ... 6 = Sunday
	TimeSlot string // "HH:MM", minute granularity
}

// ValidDayIndex reports whether day addresses a column of the weekly grid.
func ValidDayIndex(day int) bool {
	return day >= 0 && day <= 6
}

// Rule is a free-text constraint forwarded to the assistant interpreter.
type Rule struct {
	ID   string
	Text string
}

// WeeklyRoutine is a template bulk-instantiated into unassigned tasks.
// It is not itself schedulable.
type WeeklyRoutine struct {
	ID           string
	Title        string
	CategoryID   string
	DurationMins int
}
