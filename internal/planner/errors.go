package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidPlacement = errors.New("invalid day or time slot")
	ErrEmptyTitle       = errors.New("title is empty")
	ErrEmptyRule        = errors.New("rule text is empty")
	ErrNothingToImport  = errors.New("no routines to import")
	ErrGestureRejected  = errors.New("gesture rejected")
)
