package usecase

import (
	"context"

	"one48-planner/internal/gesture"
	"one48-planner/internal/model"
	"one48-planner/internal/planner"
	"one48-planner/internal/planner/repository"
)

// BeginDrag starts dragging a task or scheduled event.
func (uc *implUseCase) BeginDrag(ctx context.Context, sc model.Scope, input planner.DragInput) error {
	kind := gesture.KindTask
	if input.Kind == "event" {
		kind = gesture.KindEvent
	}
	if !uc.gesture.DragStart(input.ID, kind) {
		return planner.ErrGestureRejected
	}
	return nil
}

// PreviewDrop reports the snapped slot the current drag would land on.
func (uc *implUseCase) PreviewDrop(ctx context.Context, sc model.Scope, input planner.DropInput) (string, error) {
	preview, ok := uc.gesture.DragOver(input.DayIndex, input.PixelY)
	if !ok {
		return "", planner.ErrGestureRejected
	}
	return preview.TimeSlot, nil
}

// Drop commits the current drag onto a day column. A task that lands on the
// schedule leaves the unassigned store.
func (uc *implUseCase) Drop(ctx context.Context, sc model.Scope, input planner.DropInput) (planner.DropOutput, error) {
	result, ok := uc.gesture.DropOnDay(input.DayIndex, input.PixelY)
	if !ok {
		return planner.DropOutput{}, planner.ErrGestureRejected
	}

	if result.Kind == gesture.KindTask {
		if err := uc.repo.DeleteTask(ctx, sc, result.Event.ID); err != nil {
			uc.l.Warnf(ctx, "planner: failed to delete dropped task %s from store: %v", result.Event.ID, err)
		}
	}
	return planner.DropOutput{Event: result.Event, Scheduled: true}, nil
}

// DropOnUnassigned detaches the dragged event back into the task list and
// persists it; the store-assigned id replaces the event id.
func (uc *implUseCase) DropOnUnassigned(ctx context.Context, sc model.Scope) (model.Task, error) {
	task, ok := uc.gesture.DropOnUnassigned()
	if !ok {
		return model.Task{}, planner.ErrGestureRejected
	}

	created, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
		Title:        task.Title,
		Subtitle:     task.Subtitle,
		Notes:        task.Notes,
		CategoryID:   task.CategoryID,
		DurationMins: task.DurationMins,
		IsAllDay:     task.IsAllDay,
	})
	if err != nil {
		uc.l.Warnf(ctx, "planner: failed to persist detached task %q: %v", task.Title, err)
		return task, nil
	}

	uc.board.SetTasks(append(uc.board.Tasks(), created))
	return created, nil
}

// CancelDrag abandons the current drag.
func (uc *implUseCase) CancelDrag(ctx context.Context, sc model.Scope) {
	uc.gesture.CancelDrag()
}

// ClickSlot resolves a grid click to a snapped slot for a new entry.
func (uc *implUseCase) ClickSlot(ctx context.Context, sc model.Scope, input planner.DropInput) (string, error) {
	slot, ok := uc.gesture.ClickSlot(input.DayIndex, input.PixelY)
	if !ok {
		return "", planner.ErrGestureRejected
	}
	return slot, nil
}

// BeginResize starts resizing a scheduled event.
func (uc *implUseCase) BeginResize(ctx context.Context, sc model.Scope, id string) error {
	if !uc.gesture.ResizeStart(id) {
		return planner.ErrGestureRejected
	}
	return nil
}

// Resize applies one incremental resize step. Steps outside an active
// resize are ignored by the engine.
func (uc *implUseCase) Resize(ctx context.Context, sc model.Scope, input planner.ResizeInput) error {
	uc.gesture.ResizeBy(input.DeltaPixels)
	return nil
}

// EndResize snaps and commits the resize.
func (uc *implUseCase) EndResize(ctx context.Context, sc model.Scope) (model.ScheduledEvent, error) {
	ev, ok := uc.gesture.ResizeEnd()
	if !ok {
		return model.ScheduledEvent{}, planner.ErrGestureRejected
	}
	return ev, nil
}
