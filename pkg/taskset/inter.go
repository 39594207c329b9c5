package taskset

import "context"

// ProgressSetter accepts progress updates in percent (0..100)
type ProgressSetter interface {
	SetProgress(percent float64)
}

// Task is a unit of work consumed by a collection
type Task interface {
	ProgressSetter
	// Name is used for diagnostics only
	Name() string
	// RunSync blocks until the run has finished
	RunSync(ctx context.Context)
	// RunAsync starts the run and returns immediately. IsRunning must already
	// report true when RunAsync returns (unless the run has finished).
	RunAsync(ctx context.Context)
	// IsRunning is a non-blocking liveness query
	IsRunning() bool
	// IsSuccess reports the outcome, valid only after the run has finished
	IsSuccess() bool
}

// ProgressReporter exposes the current progress of a task
type ProgressReporter interface {
	Progress() float64
}

// Notifier is implemented by tasks able to signal the end of the current run.
// The returned channel is closed when the run finishes.
type Notifier interface {
	Done() <-chan struct{}
}
