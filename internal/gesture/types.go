package gesture

import "one48-planner/internal/model"

// Kind distinguishes drag sources.
type Kind string

const (
	KindTask  Kind = "task"  // from the unassigned lane
	KindEvent Kind = "event" // already on the grid
)

// Phase is the interactive gesture state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseResizing
)

// Payload is everything captured at drag start. Duration does not change
// during a move, so this is sufficient to render a preview.
type Payload struct {
	ID           string
	Kind         Kind
	Title        string
	CategoryID   string
	DurationMins int
}

// Preview is the advisory slot shown while dragging. Never committed to the
// board.
type Preview struct {
	DayIndex int
	TimeSlot string
}

// DropResult reports what a completed drop did to the schedule.
type DropResult struct {
	Kind  Kind
	Event model.ScheduledEvent
}
