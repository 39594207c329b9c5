package work

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/core"
)

// Base holds the run state of a task. It is safe for concurrent use.
type Base struct {
	id   uuid.UUID
	name string

	mu       sync.RWMutex
	running  bool
	success  bool
	progress float64
	done     chan struct{}
	closed   bool
	result   taskset.Result
}

func NewBase(name string) *Base {
	return &Base{
		id:   uuid.New(),
		name: name,
		done: make(chan struct{}),
	}
}

func (b *Base) ID() uuid.UUID {
	return b.id
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) IsRunning() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.running
}

func (b *Base) IsSuccess() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.success
}

func (b *Base) Progress() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.progress
}

// SetProgress clamps percent to 0..100 and ignores values lower than the
// current progress.
func (b *Base) SetProgress(percent float64) {
	percent = taskset.ClampProgress(percent)

	b.mu.Lock()
	defer b.mu.Unlock()
	if percent > b.progress {
		b.progress = percent
	}
}

// Done returns a channel closed when the current (or next) run finishes.
func (b *Base) Done() <-chan struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.done
}

// Result returns the outcome of the last finished run.
func (b *Base) Result() taskset.Result {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.result
}

// Begin marks the task as running. It fails with ErrAlreadyRunning when a run
// is in flight.
func (b *Base) Begin() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return fmt.Errorf("%s: %w", b.name, ErrAlreadyRunning)
	}

	b.running = true
	b.success = false
	b.progress = 0
	if b.closed {
		b.done = make(chan struct{})
		b.closed = false
	}
	return nil
}

// Finish fixes the outcome of the current run. Calling it outside a run is a
// no-op returning the previous result.
func (b *Base) Finish(err error) taskset.Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return b.result
	}

	res := taskset.ResultFromError(b.name, err)
	b.result = res
	b.success = res.IsSuccess()
	b.progress = 100
	b.running = false
	close(b.done)
	b.closed = true
	return res
}

// Start begins a run of exec, on a new goroutine when async is set. A task
// that is already running is left alone and Start reports false.
func (b *Base) Start(ctx context.Context, async bool, exec func(ctx context.Context) error) bool {
	if err := b.Begin(); err != nil {
		core.GetLogger(ctx).Warn("run rejected", "task", b.name, "error", err)
		return false
	}

	if async {
		go b.complete(ctx, exec)
	} else {
		b.complete(ctx, exec)
	}
	return true
}

func (b *Base) complete(ctx context.Context, exec func(ctx context.Context) error) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
		res := b.Finish(err)
		core.GetLogger(ctx).Debug("run finished", "task", b.name, "success", res.IsSuccess(), "error", res.Err())
	}()

	err = exec(ctx)
}
