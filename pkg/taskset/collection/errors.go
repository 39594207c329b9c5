package collection

import (
	"errors"

	"github.com/ib-77/taskset/pkg/taskset/work"
)

var (
	ErrAlreadyRunning = work.ErrAlreadyRunning
	ErrChildrenFailed = errors.New("child tasks failed")
)
