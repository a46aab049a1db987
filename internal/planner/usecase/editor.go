package usecase

import (
	"context"
	"fmt"
	"strings"

	"one48-planner/internal/model"
	"one48-planner/internal/planner"
	"one48-planner/internal/planner/repository"
	"one48-planner/pkg/timegrid"
)

// SaveEvent applies a modal editor save. With a day and time slot the entry
// lands on the schedule; without one it becomes (or stays) an unassigned
// store task. An entry can cross sides in either direction.
func (uc *implUseCase) SaveEvent(ctx context.Context, sc model.Scope, input planner.SaveEventInput) (planner.SaveEventOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return planner.SaveEventOutput{}, planner.ErrEmptyTitle
	}

	categoryID := input.CategoryID
	if categoryID == "" {
		categoryID = model.DefaultCategoryID
	}
	duration := input.DurationMins
	if duration < timegrid.MinDurationMins {
		duration = timegrid.MinDurationMins
	}

	task := model.Task{
		ID:           input.ID,
		Title:        title,
		Subtitle:     input.Subtitle,
		Notes:        input.Notes,
		CategoryID:   categoryID,
		DurationMins: duration,
		IsAllDay:     input.IsAllDay,
	}

	if input.DayIndex != nil && input.TimeSlot != nil {
		return uc.saveScheduled(ctx, sc, task, *input.DayIndex, *input.TimeSlot)
	}
	return uc.saveUnassigned(ctx, sc, task)
}

func (uc *implUseCase) saveScheduled(ctx context.Context, sc model.Scope, task model.Task, day int, slot string) (planner.SaveEventOutput, error) {
	if task.ID == "" {
		task.ID = uc.newID()
	}

	// If the entry was an unassigned task, it leaves the store.
	_, wasTask := uc.board.Task(task.ID)

	ev := model.ScheduledEvent{Task: task, DayIndex: day, TimeSlot: slot}
	if !uc.board.Upsert(ev) {
		return planner.SaveEventOutput{}, planner.ErrInvalidPlacement
	}

	if wasTask {
		uc.dropBoardTask(task.ID)
		if err := uc.repo.DeleteTask(ctx, sc, task.ID); err != nil {
			uc.l.Warnf(ctx, "planner: failed to delete scheduled task %s from store: %v", task.ID, err)
		}
	}
	return planner.SaveEventOutput{ID: task.ID, Scheduled: true}, nil
}

func (uc *implUseCase) saveUnassigned(ctx context.Context, sc model.Scope, task model.Task) (planner.SaveEventOutput, error) {
	// A scheduled event saved without a placement comes off the grid.
	if _, wasEvent := uc.board.Event(task.ID); wasEvent {
		uc.board.Delete(task.ID)
		task.ID = ""
	}

	if task.ID == "" {
		created, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
			Title:        task.Title,
			Subtitle:     task.Subtitle,
			Notes:        task.Notes,
			CategoryID:   task.CategoryID,
			DurationMins: task.DurationMins,
			IsAllDay:     task.IsAllDay,
		})
		if err != nil {
			return planner.SaveEventOutput{}, fmt.Errorf("failed to create task: %w", err)
		}
		uc.board.SetTasks(append(uc.board.Tasks(), created))
		return planner.SaveEventOutput{ID: created.ID}, nil
	}

	if _, ok := uc.board.Task(task.ID); !ok {
		return planner.SaveEventOutput{}, planner.ErrTaskNotFound
	}
	if err := uc.repo.UpdateTask(ctx, sc, task); err != nil {
		return planner.SaveEventOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	tasks := uc.board.Tasks()
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			break
		}
	}
	uc.board.SetTasks(tasks)
	return planner.SaveEventOutput{ID: task.ID}, nil
}

// RemoveEvent deletes an entry wherever it lives: schedule first, then the
// unassigned store.
func (uc *implUseCase) RemoveEvent(ctx context.Context, sc model.Scope, id string) error {
	if uc.board.Delete(id) {
		return nil
	}
	if _, ok := uc.board.Task(id); !ok {
		return planner.ErrEventNotFound
	}
	if err := uc.repo.DeleteTask(ctx, sc, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	uc.dropBoardTask(id)
	return nil
}

// dropBoardTask removes one task from the board's unassigned list.
func (uc *implUseCase) dropBoardTask(id string) {
	tasks := uc.board.Tasks()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	uc.board.SetTasks(kept)
}
