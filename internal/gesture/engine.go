// Package gesture implements the drag/drop and resize state machine over the
// schedule board. All gesture state lives in the Engine so interactions are
// testable without a pointer device.
package gesture

import (
	"math"
	"sync"
	"time"

	"one48-planner/internal/model"
	"one48-planner/internal/schedule"
	"one48-planner/pkg/timegrid"
)

// DefaultGuardWindow suppresses click-to-edit right after a resize release,
// so finishing a resize does not also open the editor.
const DefaultGuardWindow = 100 * time.Millisecond

// Engine is the per-session gesture state machine. Drag and resize are
// mutually exclusive; a resize in progress wins ties.
type Engine struct {
	mu    sync.Mutex
	grid  timegrid.Grid
	board *schedule.Board

	now         func() time.Time
	guardWindow time.Duration

	phase        Phase
	drag         *Payload
	preview      *Preview
	resizeID     string
	liveDuration float64
	guardUntil   time.Time
	guardedID    string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source. For tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithGuardWindow overrides the post-resize click guard duration.
func WithGuardWindow(d time.Duration) Option {
	return func(e *Engine) { e.guardWindow = d }
}

// New creates an idle engine over the board.
func New(board *schedule.Board, grid timegrid.Grid, opts ...Option) *Engine {
	e := &Engine{
		grid:        grid,
		board:       board,
		now:         time.Now,
		guardWindow: DefaultGuardWindow,
		phase:       PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phase returns the current gesture phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Dragged returns the captured drag payload, if a drag is in progress.
func (e *Engine) Dragged() (Payload, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag == nil {
		return Payload{}, false
	}
	return *e.drag, true
}

// CurrentPreview returns the advisory preview slot, if any.
func (e *Engine) CurrentPreview() (Preview, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.preview == nil {
		return Preview{}, false
	}
	return *e.preview, true
}

// DragStart captures the source item and enters Dragging. Returns false if
// the item is unknown, a resize is in progress, or the item is still inside
// its post-resize guard window.
func (e *Engine) DragStart(id string, kind Kind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == PhaseResizing {
		return false
	}
	if e.guarded(id) {
		return false
	}

	var payload Payload
	switch kind {
	case KindTask:
		t, ok := e.board.Task(id)
		if !ok {
			return false
		}
		payload = Payload{ID: id, Kind: kind, Title: t.Title, CategoryID: t.CategoryID, DurationMins: t.DurationMins}
	case KindEvent:
		ev, ok := e.board.Event(id)
		if !ok {
			return false
		}
		payload = Payload{ID: id, Kind: kind, Title: ev.Title, CategoryID: ev.CategoryID, DurationMins: ev.DurationMins}
	default:
		return false
	}

	e.phase = PhaseDragging
	e.drag = &payload
	e.preview = nil
	return true
}

// DragOver recomputes the advisory preview slot for the pointer position.
// Purely advisory; the board is untouched.
func (e *Engine) DragOver(dayIndex int, pixelY float64) (Preview, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseDragging || !model.ValidDayIndex(dayIndex) {
		e.preview = nil
		return Preview{}, false
	}

	p := Preview{DayIndex: dayIndex, TimeSlot: e.grid.TimeFromPixel(pixelY)}
	e.preview = &p
	return p, true
}

// DropOnDay commits the drag at the snapped slot: unassigned tasks are moved
// onto the schedule, events are relocated. Any failure cancels the gesture
// without mutating the board.
func (e *Engine) DropOnDay(dayIndex int, pixelY float64) (DropResult, bool) {
	e.mu.Lock()
	drag := e.drag
	e.reset()
	e.mu.Unlock()

	if drag == nil || !model.ValidDayIndex(dayIndex) {
		return DropResult{}, false
	}

	slot := e.grid.TimeFromPixel(pixelY)
	switch drag.Kind {
	case KindTask:
		ev, ok := e.board.MoveToSchedule(drag.ID, dayIndex, slot)
		if !ok {
			return DropResult{}, false
		}
		return DropResult{Kind: KindTask, Event: ev}, true
	case KindEvent:
		if !e.board.Relocate(drag.ID, dayIndex, slot) {
			return DropResult{}, false
		}
		ev, _ := e.board.Event(drag.ID)
		return DropResult{Kind: KindEvent, Event: ev}, true
	}
	return DropResult{}, false
}

// DropOnUnassigned detaches a dragged event from the grid and returns its
// task form for the caller to persist. Dropping a task back on its own lane
// is a cancel.
func (e *Engine) DropOnUnassigned() (model.Task, bool) {
	e.mu.Lock()
	drag := e.drag
	e.reset()
	e.mu.Unlock()

	if drag == nil || drag.Kind != KindEvent {
		return model.Task{}, false
	}
	return e.board.MoveToUnassigned(drag.ID)
}

// CancelDrag abandons the gesture with no mutation.
func (e *Engine) CancelDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// ClickSlot resolves a plain click on empty grid space to the slot a new
// event should be created at. Suppressed during drags, resizes, and the
// post-resize guard window.
func (e *Engine) ClickSlot(dayIndex int, pixelY float64) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseIdle || !model.ValidDayIndex(dayIndex) {
		return "", false
	}
	if !e.guardUntil.IsZero() && e.now().Before(e.guardUntil) {
		return "", false
	}
	return e.grid.ClickTimeFromPixel(pixelY)
}

// ResizeStart begins tracking a resize on the event's bottom handle.
func (e *Engine) ResizeStart(eventID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseIdle {
		return false
	}
	ev, ok := e.board.Event(eventID)
	if !ok {
		return false
	}

	e.phase = PhaseResizing
	e.resizeID = eventID
	e.liveDuration = float64(ev.DurationMins)
	return true
}

// ResizeBy applies a pointer movement delta as a live, unsnapped duration
// change for smooth feedback. Fractional minutes accumulate across calls.
func (e *Engine) ResizeBy(deltaPixels float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseResizing {
		return
	}
	e.liveDuration += e.grid.PixelsToDuration(deltaPixels)
	if e.liveDuration < timegrid.MinDurationMins {
		e.liveDuration = timegrid.MinDurationMins
	}
	e.board.Resize(e.resizeID, int(math.Round(e.liveDuration)))
}

// ResizeEnd snaps the final duration to the grid unit, arms the click guard
// and returns the resized event.
func (e *Engine) ResizeEnd() (model.ScheduledEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseResizing {
		return model.ScheduledEvent{}, false
	}

	id := e.resizeID
	final := e.grid.SnapDuration(int(math.Round(e.liveDuration)))
	e.board.Resize(id, final)

	e.phase = PhaseIdle
	e.resizeID = ""
	e.liveDuration = 0
	e.guardUntil = e.now().Add(e.guardWindow)
	e.guardedID = id

	ev, ok := e.board.Event(id)
	return ev, ok
}

// guarded reports whether id is still inside its post-resize guard window.
// Caller holds the lock.
func (e *Engine) guarded(id string) bool {
	return e.guardedID == id && !e.guardUntil.IsZero() && e.now().Before(e.guardUntil)
}

// reset returns to Idle. Caller holds the lock.
func (e *Engine) reset() {
	e.phase = PhaseIdle
	e.drag = nil
	e.preview = nil
	e.resizeID = ""
	e.liveDuration = 0
}
