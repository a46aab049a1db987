// Package schedule holds the authoritative in-memory state of the displayed
// week: scheduled events, the cached unassigned tasks, categories, rules and
// routines, plus the dirty flag driving calendar auto-sync.
package schedule

import (
	"sync"

	"one48-planner/internal/model"
	"one48-planner/pkg/timegrid"
)

// Board is the single owner of week state. Mutations are total: malformed
// input (unknown id, out-of-range day, bad slot) is a no-op reported as
// found=false, never an error.
type Board struct {
	mu sync.Mutex

	categories []model.Category
	events     []model.ScheduledEvent
	tasks      []model.Task
	rules      []model.Rule
	routines   []model.WeeklyRoutine

	dirty bool
}

// New creates a board over a fixed category set. An empty set falls back to
// the default planner categories.
func New(categories []model.Category) *Board {
	if len(categories) == 0 {
		categories = model.DefaultCategories()
	}
	return &Board{categories: categories}
}

// Categories returns the fixed category set.
func (b *Board) Categories() []model.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Category, len(b.categories))
	copy(out, b.categories)
	return out
}

// Category resolves id, falling back to the default category so every event
// always renders under a known bucket.
func (b *Board) Category(id string) model.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.categoryLocked(id)
}

func (b *Board) categoryLocked(id string) model.Category {
	var fallback model.Category
	for _, c := range b.categories {
		if c.ID == id {
			return c
		}
		if c.ID == model.DefaultCategoryID {
			fallback = c
		}
	}
	if fallback.ID == "" && len(b.categories) > 0 {
		fallback = b.categories[0]
	}
	return fallback
}

// CategoryForColor maps a calendar colorId back to a category, falling back
// to the default category for unknown codes.
func (b *Board) CategoryForColor(colorID string) model.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	if colorID != "" {
		for _, c := range b.categories {
			if c.GoogleColorID == colorID {
				return c
			}
		}
	}
	return b.categoryLocked(model.DefaultCategoryID)
}

// Events returns a copy of the scheduled events.
func (b *Board) Events() []model.ScheduledEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.ScheduledEvent, len(b.events))
	copy(out, b.events)
	return out
}

// Tasks returns a copy of the cached unassigned tasks.
func (b *Board) Tasks() []model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Rules returns a copy of the assistant rules.
func (b *Board) Rules() []model.Rule {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Rule, len(b.rules))
	copy(out, b.rules)
	return out
}

// Routines returns a copy of the weekly routines.
func (b *Board) Routines() []model.WeeklyRoutine {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.WeeklyRoutine, len(b.routines))
	copy(out, b.routines)
	return out
}

// Event looks up a scheduled event by id.
func (b *Board) Event(id string) (model.ScheduledEvent, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ev := range b.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.ScheduledEvent{}, false
}

// Task looks up a cached unassigned task by id.
func (b *Board) Task(id string) (model.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// SetTasks replaces the cached unassigned tasks. Pure load from the store
// subscription; does not touch the dirty flag.
func (b *Board) SetTasks(tasks []model.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append([]model.Task(nil), tasks...)
}

// SetRules replaces the rule set. Pure load.
func (b *Board) SetRules(rules []model.Rule) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = append([]model.Rule(nil), rules...)
}

// SetRoutines replaces the routine set. Pure load.
func (b *Board) SetRoutines(routines []model.WeeklyRoutine) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routines = append([]model.WeeklyRoutine(nil), routines...)
}

// MoveToSchedule turns an unassigned task into a scheduled event at the
// given slot. The caller is responsible for deleting the task from the
// persistent store; the cached copy is dropped here so the two states stay
// mutually exclusive.
func (b *Board) MoveToSchedule(taskID string, dayIndex int, timeSlot string) (model.ScheduledEvent, bool) {
	if !model.ValidDayIndex(dayIndex) || !timegrid.ValidSlot(timeSlot) {
		return model.ScheduledEvent{}, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, t := range b.tasks {
		if t.ID != taskID {
			continue
		}
		b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
		ev := model.ScheduledEvent{Task: t, DayIndex: dayIndex, TimeSlot: timeSlot}
		b.events = append(b.events, ev)
		b.dirty = true
		return ev, true
	}
	return model.ScheduledEvent{}, false
}

// MoveToUnassigned removes an event from the schedule and returns its task
// form. The caller persists the task; the store assigns a fresh id, so the
// returned id must be treated as provisional.
func (b *Board) MoveToUnassigned(eventID string) (model.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ev := range b.events {
		if ev.ID != eventID {
			continue
		}
		b.events = append(b.events[:i], b.events[i+1:]...)
		b.dirty = true
		return ev.Task, true
	}
	return model.Task{}, false
}

// Relocate moves a scheduled event to a new slot in place.
func (b *Board) Relocate(eventID string, dayIndex int, timeSlot string) bool {
	if !model.ValidDayIndex(dayIndex) || !timegrid.ValidSlot(timeSlot) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].ID == eventID {
			b.events[i].DayIndex = dayIndex
			b.events[i].TimeSlot = timeSlot
			b.dirty = true
			return true
		}
	}
	return false
}

// Resize sets an event's duration, clamped to the minimum. Live resize
// values may be unsnapped; snapping happens in the gesture engine on
// release.
func (b *Board) Resize(eventID string, durationMins int) bool {
	if durationMins < timegrid.MinDurationMins {
		durationMins = timegrid.MinDurationMins
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].ID == eventID {
			b.events[i].DurationMins = durationMins
			b.dirty = true
			return true
		}
	}
	return false
}

// Upsert creates or replaces a scheduled event by id. Used by the modal
// editor and by calendar-originated inserts.
func (b *Board) Upsert(ev model.ScheduledEvent) bool {
	if !model.ValidDayIndex(ev.DayIndex) || !timegrid.ValidSlot(ev.TimeSlot) {
		return false
	}
	if ev.DurationMins < timegrid.MinDurationMins {
		ev.DurationMins = timegrid.MinDurationMins
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].ID == ev.ID {
			b.events[i] = ev
			b.dirty = true
			return true
		}
	}
	b.events = append(b.events, ev)
	b.dirty = true
	return true
}

// Delete removes a scheduled event by id.
func (b *Board) Delete(eventID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ev := range b.events {
		if ev.ID == eventID {
			b.events = append(b.events[:i], b.events[i+1:]...)
			b.dirty = true
			return true
		}
	}
	return false
}

// ReplaceWeek atomically replaces the scheduled-event list with a freshly
// downloaded week and clears the dirty flag. Full overwrite, not a merge.
func (b *Board) ReplaceWeek(events []model.ScheduledEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append([]model.ScheduledEvent(nil), events...)
	b.dirty = false
}

// CommitWeek replaces the scheduled-event list with a locally produced
// result (assistant reducer) and marks the board dirty.
func (b *Board) CommitWeek(events []model.ScheduledEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append([]model.ScheduledEvent(nil), events...)
	b.dirty = true
}

// Dirty reports whether local state diverged from the last sync.
func (b *Board) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// MarkDirty flags local divergence explicitly (store-side edits that do not
// go through a board mutation).
func (b *Board) MarkDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = true
}

// ClearDirty resets the flag after a successful upload.
func (b *Board) ClearDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}
