package repository

import (
	"context"

	"one48-planner/internal/model"
)

// Collection identifies one synced store collection.
type Collection string

const (
	CollectionTasks    Collection = "todos"
	CollectionRoutines Collection = "routines"
	CollectionRules    Collection = "airules"
)

// StoreRepository is the interface for the shared realtime store. All paths
// are keyed by the scope's user so multiple people can use one deployment.
type StoreRepository interface {
	ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error)
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, sc model.Scope, task model.Task) error
	DeleteTask(ctx context.Context, sc model.Scope, id string) error

	ListRoutines(ctx context.Context, sc model.Scope) ([]model.WeeklyRoutine, error)
	CreateRoutine(ctx context.Context, sc model.Scope, opt CreateRoutineOptions) (model.WeeklyRoutine, error)
	DeleteRoutine(ctx context.Context, sc model.Scope, id string) error

	ListRules(ctx context.Context, sc model.Scope) ([]model.Rule, error)
	CreateRule(ctx context.Context, sc model.Scope, text string) (model.Rule, error)
	DeleteRule(ctx context.Context, sc model.Scope, id string) error

	// Subscribe streams change notifications for one collection until the
	// context is cancelled. Each tick means "re-list the collection".
	Subscribe(ctx context.Context, sc model.Scope, col Collection) (<-chan struct{}, error)
}

// CreateTaskOptions is the input for creating an unassigned task.
type CreateTaskOptions struct {
	Title        string
	Subtitle     string
	Notes        string
	CategoryID   string
	DurationMins int
	IsAllDay     bool
}

// CreateRoutineOptions is the input for creating a weekly routine template.
type CreateRoutineOptions struct {
	Title        string
	CategoryID   string
	DurationMins int
}
