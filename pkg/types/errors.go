package types

import "errors"

// Input errors. These are recovered by the session loop and reported to
// the user; the loop keeps running.
var (
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidChoice    = errors.New("invalid menu choice")
)

// Store errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrMalformedRecord = errors.New("malformed task record")
	ErrStorageIO       = errors.New("task file I/O failed")
)
