package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"one48-planner/internal/assistant"
	"one48-planner/internal/gesture"
	"one48-planner/internal/planner/repository"
	"one48-planner/internal/schedule"
	pkgLog "one48-planner/pkg/log"
	"one48-planner/pkg/timegrid"
)

// SyncEngine is the slice of the calendar sync engine the usecase drives.
type SyncEngine interface {
	Download(ctx context.Context, weekStart time.Time) error
	Upload(ctx context.Context, weekStart time.Time) error
	Syncing() bool
}

// Interpreter turns assistant input into validated actions.
type Interpreter interface {
	Interpret(ctx context.Context, input assistant.InterpretInput) ([]assistant.Action, error)
}

// SessionChecker reports whether a Google session exists.
type SessionChecker interface {
	HasSession() bool
}

type implUseCase struct {
	l       pkgLog.Logger
	board   *schedule.Board
	gesture *gesture.Engine
	syncer  SyncEngine
	interp  Interpreter
	repo    repository.StoreRepository
	session SessionChecker
	loc     *time.Location
	newID   func() string
	now     func() time.Time
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	board *schedule.Board,
	gestureEngine *gesture.Engine,
	syncer SyncEngine,
	interp Interpreter,
	repo repository.StoreRepository,
	session SessionChecker,
	loc *time.Location,
) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:       l,
		board:   board,
		gesture: gestureEngine,
		syncer:  syncer,
		interp:  interp,
		repo:    repo,
		session: session,
		loc:     loc,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// weekStart anchors all week math to the configured zone.
func (uc *implUseCase) weekStart() time.Time {
	return timegrid.WeekStart(uc.now().In(uc.loc))
}
