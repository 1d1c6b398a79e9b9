package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrNothingParseable = errors.New("no tasks could be parsed from input")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
)
