package work

import "errors"

var (
	ErrAlreadyRunning = errors.New("task already running")
	ErrPanicked       = errors.New("task panicked")
	ErrNoFunc         = errors.New("task has no function")
)
