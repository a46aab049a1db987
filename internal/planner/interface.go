package planner

import (
	"context"

	"one48-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// Week returns the current snapshot of the selected week.
	Week(ctx context.Context, sc model.Scope) (WeekOutput, error)

	// Reload pulls tasks, routines and rules from the store into the board.
	Reload(ctx context.Context, sc model.Scope) error

	// WatchStore keeps the board in step with store changes until the
	// context is cancelled.
	WatchStore(ctx context.Context, sc model.Scope) error

	// SaveEvent applies a modal editor save: with a placement the entry is
	// scheduled, without one it lives in the unassigned store.
	SaveEvent(ctx context.Context, sc model.Scope, input SaveEventInput) (SaveEventOutput, error)

	// RemoveEvent deletes an entry from the schedule or the store.
	RemoveEvent(ctx context.Context, sc model.Scope, id string) error

	// BeginDrag starts dragging a task or scheduled event.
	BeginDrag(ctx context.Context, sc model.Scope, input DragInput) error

	// PreviewDrop reports where the current drag would land.
	PreviewDrop(ctx context.Context, sc model.Scope, input DropInput) (string, error)

	// Drop commits the current drag onto a day column.
	Drop(ctx context.Context, sc model.Scope, input DropInput) (DropOutput, error)

	// DropOnUnassigned detaches the dragged event back into the task list.
	DropOnUnassigned(ctx context.Context, sc model.Scope) (model.Task, error)

	// CancelDrag abandons the current drag.
	CancelDrag(ctx context.Context, sc model.Scope)

	// ClickSlot resolves a grid click to a snapped time slot for a new entry.
	ClickSlot(ctx context.Context, sc model.Scope, input DropInput) (string, error)

	// BeginResize starts resizing a scheduled event.
	BeginResize(ctx context.Context, sc model.Scope, id string) error

	// Resize applies one incremental resize step.
	Resize(ctx context.Context, sc model.Scope, input ResizeInput) error

	// EndResize snaps and commits the resize.
	EndResize(ctx context.Context, sc model.Scope) (model.ScheduledEvent, error)

	// Assist interprets a text or audio instruction and applies the
	// resulting schedule changes.
	Assist(ctx context.Context, sc model.Scope, input AssistInput) (AssistOutput, error)

	// SyncDown replaces the week with the calendar's view.
	SyncDown(ctx context.Context, sc model.Scope) error

	// SyncUp overwrites the calendar week with the board.
	SyncUp(ctx context.Context, sc model.Scope) error

	// AddRule stores a free-text assistant rule.
	AddRule(ctx context.Context, sc model.Scope, text string) (model.Rule, error)

	// RemoveRule deletes a rule.
	RemoveRule(ctx context.Context, sc model.Scope, id string) error

	// AddRoutine stores a weekly routine template.
	AddRoutine(ctx context.Context, sc model.Scope, input AddRoutineInput) (model.WeeklyRoutine, error)

	// RemoveRoutine deletes a routine template.
	RemoveRoutine(ctx context.Context, sc model.Scope, id string) error

	// ImportRoutines instantiates every routine as an unassigned task.
	ImportRoutines(ctx context.Context, sc model.Scope) (ImportRoutinesOutput, error)

	// ExportWeek serializes the current week to iCalendar bytes.
	ExportWeek(ctx context.Context, sc model.Scope) (ExportOutput, error)
}
