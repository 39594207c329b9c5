package taskset

import (
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of one finished run of a task
type Result struct {
	id        uuid.UUID
	task      string
	createdAt time.Time
	err       error
	isSuccess bool
	isCancel  bool
}

func Success(task string) Result {
	return Result{
		task:      task,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail(task string, err error) Result {
	return Result{
		task:      task,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel(task string, err error) Result {
	return Result{
		task:      task,
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ResultFromError maps a run error to a Result: nil is success, context
// cancellation is cancel, anything else is failure.
func ResultFromError(task string, err error) Result {
	switch {
	case IsNil(err):
		return Success(task)
	case IsCancellationError(err):
		return Cancel(task, err)
	default:
		return Fail(task, err)
	}
}

func (r Result) Task() string {
	return r.task
}

func (r Result) Err() error {
	return r.err
}

func (r Result) IsSuccess() bool {
	return r.isSuccess
}

func (r Result) IsCancel() bool {
	return r.isCancel
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty is true for the zero Result, i.e. a task that never finished a run
func (r Result) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result) Id() uuid.UUID {
	return r.id
}
