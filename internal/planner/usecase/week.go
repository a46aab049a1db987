package usecase

import (
	"context"
	"fmt"

	"one48-planner/internal/model"
	"one48-planner/internal/planner"
	"one48-planner/internal/planner/repository"
)

// Week returns the current snapshot of the selected week.
func (uc *implUseCase) Week(ctx context.Context, sc model.Scope) (planner.WeekOutput, error) {
	return planner.WeekOutput{
		WeekStart:  uc.weekStart(),
		Events:     uc.board.Events(),
		Tasks:      uc.board.Tasks(),
		Categories: uc.board.Categories(),
		Routines:   uc.board.Routines(),
		Rules:      uc.board.Rules(),
		Dirty:      uc.board.Dirty(),
		Syncing:    uc.syncer.Syncing(),
		Connected:  uc.session.HasSession(),
	}, nil
}

// Reload pulls tasks, routines and rules from the store into the board.
func (uc *implUseCase) Reload(ctx context.Context, sc model.Scope) error {
	tasks, err := uc.repo.ListTasks(ctx, sc)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	routines, err := uc.repo.ListRoutines(ctx, sc)
	if err != nil {
		return fmt.Errorf("failed to load routines: %w", err)
	}
	rules, err := uc.repo.ListRules(ctx, sc)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}

	uc.board.SetTasks(tasks)
	uc.board.SetRoutines(routines)
	uc.board.SetRules(rules)
	uc.l.Infof(ctx, "planner: loaded %d tasks, %d routines, %d rules", len(tasks), len(routines), len(rules))
	return nil
}

// WatchStore subscribes to the store collections and re-lists each one into
// the board on every change, until the context is cancelled.
func (uc *implUseCase) WatchStore(ctx context.Context, sc model.Scope) error {
	collections := []repository.Collection{
		repository.CollectionTasks,
		repository.CollectionRoutines,
		repository.CollectionRules,
	}
	for _, col := range collections {
		ticks, err := uc.repo.Subscribe(ctx, sc, col)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", col, err)
		}
		go uc.watchCollection(ctx, sc, col, ticks)
	}
	return nil
}

func (uc *implUseCase) watchCollection(ctx context.Context, sc model.Scope, col repository.Collection, ticks <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
		}

		var err error
		switch col {
		case repository.CollectionTasks:
			var tasks []model.Task
			if tasks, err = uc.repo.ListTasks(ctx, sc); err == nil {
				uc.board.SetTasks(tasks)
			}
		case repository.CollectionRoutines:
			var routines []model.WeeklyRoutine
			if routines, err = uc.repo.ListRoutines(ctx, sc); err == nil {
				uc.board.SetRoutines(routines)
			}
		case repository.CollectionRules:
			var rules []model.Rule
			if rules, err = uc.repo.ListRules(ctx, sc); err == nil {
				uc.board.SetRules(rules)
			}
		}
		if err != nil {
			uc.l.Warnf(ctx, "planner: refresh of %s failed: %v", col, err)
		}
	}
}
