package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyInput  = errors.New("assistant input is empty")
	ErrUnparsable  = errors.New("assistant output contained no parsable actions")
	ErrInterpreter = errors.New("assistant interpreter call failed")
)
