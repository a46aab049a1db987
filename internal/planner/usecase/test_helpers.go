package usecase

import (
	"context"
	"fmt"
	"time"

	"one48-planner/internal/assistant"
	"one48-planner/internal/gesture"
	"one48-planner/internal/model"
	"one48-planner/internal/planner/repository"
	"one48-planner/internal/schedule"
	"one48-planner/pkg/timegrid"
)

// mockLogger implements pkg/log.Logger as a no-op for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockStore implements repository.StoreRepository with func fields.
type mockStore struct {
	listTasksFunc     func(ctx context.Context, sc model.Scope) ([]model.Task, error)
	createTaskFunc    func(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error)
	updateTaskFunc    func(ctx context.Context, sc model.Scope, task model.Task) error
	deleteTaskFunc    func(ctx context.Context, sc model.Scope, id string) error
	listRoutinesFunc  func(ctx context.Context, sc model.Scope) ([]model.WeeklyRoutine, error)
	createRoutineFunc func(ctx context.Context, sc model.Scope, opt repository.CreateRoutineOptions) (model.WeeklyRoutine, error)
	deleteRoutineFunc func(ctx context.Context, sc model.Scope, id string) error
	listRulesFunc     func(ctx context.Context, sc model.Scope) ([]model.Rule, error)
	createRuleFunc    func(ctx context.Context, sc model.Scope, text string) (model.Rule, error)
	deleteRuleFunc    func(ctx context.Context, sc model.Scope, id string) error
	subscribeFunc     func(ctx context.Context, sc model.Scope, col repository.Collection) (<-chan struct{}, error)
}

func (m *mockStore) ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if m.listTasksFunc == nil {
		return nil, nil
	}
	return m.listTasksFunc(ctx, sc)
}

func (m *mockStore) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createTaskFunc == nil {
		return model.Task{
			ID:           "store-" + opt.Title,
			Title:        opt.Title,
			Subtitle:     opt.Subtitle,
			Notes:        opt.Notes,
			CategoryID:   opt.CategoryID,
			DurationMins: opt.DurationMins,
			IsAllDay:     opt.IsAllDay,
		}, nil
	}
	return m.createTaskFunc(ctx, sc, opt)
}

func (m *mockStore) UpdateTask(ctx context.Context, sc model.Scope, task model.Task) error {
	if m.updateTaskFunc == nil {
		return nil
	}
	return m.updateTaskFunc(ctx, sc, task)
}

func (m *mockStore) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteTaskFunc == nil {
		return nil
	}
	return m.deleteTaskFunc(ctx, sc, id)
}

func (m *mockStore) ListRoutines(ctx context.Context, sc model.Scope) ([]model.WeeklyRoutine, error) {
	if m.listRoutinesFunc == nil {
		return nil, nil
	}
	return m.listRoutinesFunc(ctx, sc)
}

func (m *mockStore) CreateRoutine(ctx context.Context, sc model.Scope, opt repository.CreateRoutineOptions) (model.WeeklyRoutine, error) {
	if m.createRoutineFunc == nil {
		return model.WeeklyRoutine{ID: "routine-" + opt.Title, Title: opt.Title, CategoryID: opt.CategoryID, DurationMins: opt.DurationMins}, nil
	}
	return m.createRoutineFunc(ctx, sc, opt)
}

func (m *mockStore) DeleteRoutine(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteRoutineFunc == nil {
		return nil
	}
	return m.deleteRoutineFunc(ctx, sc, id)
}

func (m *mockStore) ListRules(ctx context.Context, sc model.Scope) ([]model.Rule, error) {
	if m.listRulesFunc == nil {
		return nil, nil
	}
	return m.listRulesFunc(ctx, sc)
}

func (m *mockStore) CreateRule(ctx context.Context, sc model.Scope, text string) (model.Rule, error) {
	if m.createRuleFunc == nil {
		return model.Rule{ID: "rule-1", Text: text}, nil
	}
	return m.createRuleFunc(ctx, sc, text)
}

func (m *mockStore) DeleteRule(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteRuleFunc == nil {
		return nil
	}
	return m.deleteRuleFunc(ctx, sc, id)
}

func (m *mockStore) Subscribe(ctx context.Context, sc model.Scope, col repository.Collection) (<-chan struct{}, error) {
	if m.subscribeFunc == nil {
		ch := make(chan struct{})
		return ch, nil
	}
	return m.subscribeFunc(ctx, sc, col)
}

// mockSync implements SyncEngine.
type mockSync struct {
	downloadFunc func(ctx context.Context, weekStart time.Time) error
	uploadFunc   func(ctx context.Context, weekStart time.Time) error
	syncing      bool
}

func (m *mockSync) Download(ctx context.Context, weekStart time.Time) error {
	if m.downloadFunc == nil {
		return nil
	}
	return m.downloadFunc(ctx, weekStart)
}

func (m *mockSync) Upload(ctx context.Context, weekStart time.Time) error {
	if m.uploadFunc == nil {
		return nil
	}
	return m.uploadFunc(ctx, weekStart)
}

func (m *mockSync) Syncing() bool { return m.syncing }

// mockInterp implements Interpreter.
type mockInterp struct {
	interpretFunc func(ctx context.Context, input assistant.InterpretInput) ([]assistant.Action, error)
}

func (m *mockInterp) Interpret(ctx context.Context, input assistant.InterpretInput) ([]assistant.Action, error) {
	if m.interpretFunc == nil {
		return nil, nil
	}
	return m.interpretFunc(ctx, input)
}

type mockSession struct{ has bool }

func (m *mockSession) HasSession() bool { return m.has }

// testEnv bundles one usecase with its collaborators.
type testEnv struct {
	uc      *implUseCase
	board   *schedule.Board
	gesture *gesture.Engine
	store   *mockStore
	syncer  *mockSync
	interp  *mockInterp
	session *mockSession
}

var testScope = model.Scope{UserID: "u1"}

func newTestEnv() *testEnv {
	board := schedule.New(nil)
	engine := gesture.New(board, timegrid.Default())
	store := &mockStore{}
	syncer := &mockSync{}
	interp := &mockInterp{}
	session := &mockSession{has: true}

	uc := New(mockLogger{}, board, engine, syncer, interp, store, session, time.UTC)
	// Deterministic clock and ids for assertions.
	uc.now = func() time.Time { return time.Date(2026, 2, 25, 14, 0, 0, 0, time.UTC) }
	ids := 0
	uc.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}

	return &testEnv{uc: uc, board: board, gesture: engine, store: store, syncer: syncer, interp: interp, session: session}
}
