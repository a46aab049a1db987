package calsync

import "errors"

// Domain-specific errors for the calendar sync engine.
var (
	ErrSyncInFlight = errors.New("a calendar sync is already running")
	ErrNoSession    = errors.New("no google session, connect the calendar first")
)
