package planner

import (
	"time"

	"one48-planner/internal/model"
)

// WeekOutput is the full snapshot one client render needs.
type WeekOutput struct {
	WeekStart  time.Time
	Events     []model.ScheduledEvent
	Tasks      []model.Task
	Categories []model.Category
	Routines   []model.WeeklyRoutine
	Rules      []model.Rule
	Dirty      bool
	Syncing    bool
	Connected  bool
}

// SaveEventInput is the modal editor's save payload. A nil DayIndex or
// TimeSlot means the entry stays (or becomes) an unassigned task.
type SaveEventInput struct {
	ID           string // empty for a new entry
	Title        string
	Subtitle     string
	Notes        string
	CategoryID   string
	DurationMins int
	DayIndex     *int
	TimeSlot     *string
	IsAllDay     bool
}

// SaveEventOutput reports where the saved entry ended up.
type SaveEventOutput struct {
	ID        string
	Scheduled bool
}

// DragInput begins a drag of a task or scheduled event.
type DragInput struct {
	ID   string
	Kind string // "task" or "event"
}

// DropInput is a pointer position over the grid.
type DropInput struct {
	DayIndex int
	PixelY   float64
}

// DropOutput is the result of a completed drop.
type DropOutput struct {
	Event     model.ScheduledEvent
	Scheduled bool
}

// ResizeInput is one incremental resize step in pixels.
type ResizeInput struct {
	DeltaPixels float64
}

// AssistInput is one assistant request. Audio is base64 without a data-URL
// prefix; SelectedDay anchors phrases like "that day".
type AssistInput struct {
	Text        string
	AudioBase64 string
	AudioMime   string
	SelectedDay *int
}

// AssistOutput carries the user-facing reply and how many schedule changes
// were applied.
type AssistOutput struct {
	Reply   string
	Applied int
}

// AddRoutineInput creates a weekly routine template.
type AddRoutineInput struct {
	Title        string
	CategoryID   string
	DurationMins int
}

// ImportRoutinesOutput reports how many routines became tasks.
type ImportRoutinesOutput struct {
	Imported int
}

// ExportOutput is the serialized week.
type ExportOutput struct {
	Filename string
	MIMEType string
	Data     []byte
}
