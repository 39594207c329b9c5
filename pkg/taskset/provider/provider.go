package provider

import "github.com/ib-77/taskset/pkg/taskset"

// Provider supplies the tasks of one collection run.
type Provider interface {
	// Next returns the next task to run, or nil once exhausted
	Next() taskset.Task
	// Count is the total number of tasks the provider will yield in a run.
	// It is read once, when the run starts.
	Count() int
	// OnFinished is called once per task after it completed, before the next
	// task is requested. It must not panic; panics are recovered and logged.
	OnFinished(task taskset.Task)
}
