package usecase

import (
	"context"

	"one48-planner/internal/calsync"
	"one48-planner/internal/model"
)

// SyncDown replaces the week with the calendar's view.
func (uc *implUseCase) SyncDown(ctx context.Context, sc model.Scope) error {
	if !uc.session.HasSession() {
		return calsync.ErrNoSession
	}
	return uc.syncer.Download(ctx, uc.weekStart())
}

// SyncUp overwrites the calendar week with the board.
func (uc *implUseCase) SyncUp(ctx context.Context, sc model.Scope) error {
	if !uc.session.HasSession() {
		return calsync.ErrNoSession
	}
	return uc.syncer.Upload(ctx, uc.weekStart())
}
