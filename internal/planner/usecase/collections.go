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

// AddRule stores a free-text assistant rule.
func (uc *implUseCase) AddRule(ctx context.Context, sc model.Scope, text string) (model.Rule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Rule{}, planner.ErrEmptyRule
	}

	rule, err := uc.repo.CreateRule(ctx, sc, text)
	if err != nil {
		return model.Rule{}, fmt.Errorf("failed to create rule: %w", err)
	}
	uc.board.SetRules(append(uc.board.Rules(), rule))
	return rule, nil
}

// RemoveRule deletes a rule.
func (uc *implUseCase) RemoveRule(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteRule(ctx, sc, id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	rules := uc.board.Rules()
	kept := rules[:0]
	for _, r := range rules {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	uc.board.SetRules(kept)
	return nil
}

// AddRoutine stores a weekly routine template.
func (uc *implUseCase) AddRoutine(ctx context.Context, sc model.Scope, input planner.AddRoutineInput) (model.WeeklyRoutine, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.WeeklyRoutine{}, planner.ErrEmptyTitle
	}

	categoryID := input.CategoryID
	if categoryID == "" {
		categoryID = model.DefaultCategoryID
	}
	duration := input.DurationMins
	if duration < timegrid.MinDurationMins {
		duration = timegrid.MinDurationMins
	}

	routine, err := uc.repo.CreateRoutine(ctx, sc, repository.CreateRoutineOptions{
		Title:        title,
		CategoryID:   categoryID,
		DurationMins: duration,
	})
	if err != nil {
		return model.WeeklyRoutine{}, fmt.Errorf("failed to create routine: %w", err)
	}
	uc.board.SetRoutines(append(uc.board.Routines(), routine))
	return routine, nil
}

// RemoveRoutine deletes a routine template.
func (uc *implUseCase) RemoveRoutine(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteRoutine(ctx, sc, id); err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
	}

	routines := uc.board.Routines()
	kept := routines[:0]
	for _, r := range routines {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	uc.board.SetRoutines(kept)
	return nil
}

// ImportRoutines instantiates every routine template as an unassigned store
// task, ready to be dragged onto the week.
func (uc *implUseCase) ImportRoutines(ctx context.Context, sc model.Scope) (planner.ImportRoutinesOutput, error) {
	routines := uc.board.Routines()
	if len(routines) == 0 {
		return planner.ImportRoutinesOutput{}, planner.ErrNothingToImport
	}

	imported := 0
	tasks := uc.board.Tasks()
	for _, r := range routines {
		created, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
			Title:        r.Title,
			CategoryID:   r.CategoryID,
			DurationMins: r.DurationMins,
		})
		if err != nil {
			uc.l.Warnf(ctx, "planner: failed to import routine %q: %v", r.Title, err)
			continue
		}
		tasks = append(tasks, created)
		imported++
	}

	uc.board.SetTasks(tasks)
	if imported == 0 {
		return planner.ImportRoutinesOutput{}, fmt.Errorf("failed to import any of %d routines", len(routines))
	}
	return planner.ImportRoutinesOutput{Imported: imported}, nil
}
