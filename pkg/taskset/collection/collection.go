package collection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/core"
	"github.com/ib-77/taskset/pkg/taskset/provider"
	"github.com/ib-77/taskset/pkg/taskset/work"
)

const DefaultMaxThreads = core.DefaultMaxWorkers

// Collection runs child tasks sequentially or in bounded parallel.
type Collection struct {
	*work.Base

	mu           sync.Mutex
	children     []taskset.Task
	custom       provider.Provider
	auto         provider.Provider
	parallel     bool
	maxThreads   int
	pollInterval time.Duration

	// state of the current or last run
	inFlight  *linkedhashmap.Map
	seq       uint64
	limit     int
	total     int
	completed int
	failed    int
	peak      int
	aggregate bool
}

// Stats is a point-in-time view of a collection run
type Stats struct {
	Name         string
	Parallel     bool
	MaxThreads   int
	Total        int
	Completed    int
	Failed       int
	InFlight     int
	PeakInFlight int
	Progress     float64
	Running      bool
	Success      bool
	// Active lists in-flight tasks in dispatch order.
	Active []ActiveTask
}

// ActiveTask is an in-flight child. Progress is -1 when the task does not
// report progress.
type ActiveTask struct {
	Name     string
	Progress float64
}

func New(name string, children ...taskset.Task) *Collection {
	c := &Collection{
		Base:      work.NewBase(name),
		inFlight:  linkedhashmap.New(),
		aggregate: true,
	}
	for _, t := range children {
		c.AddChild(t)
	}
	return c
}

// AddChild appends a task to the static list. The collection owns it.
func (c *Collection) AddChild(task taskset.Task) {
	if taskset.IsNil(task) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = append(c.children, task)
}

func (c *Collection) Children() []taskset.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]taskset.Task, len(c.children))
	copy(cp, c.children)
	return cp
}

func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.children)
}

// SetProvider installs a custom provider; it takes precedence over the static
// children. Passing nil goes back to the static list.
func (c *Collection) SetProvider(p provider.Provider) {
	if taskset.IsNil(p) {
		p = nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom = p
}

// Provider returns the custom provider, or the list provider created for the
// last run over the static children (nil before the first run).
func (c *Collection) Provider() provider.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.custom != nil {
		return c.custom
	}
	return c.auto
}

func (c *Collection) SetParallel(parallel bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parallel = parallel
}

func (c *Collection) IsParallel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parallel
}

// SetMaxThreads caps the tasks in flight in parallel mode. Zero or less
// means the worker option on the run context, or DefaultMaxThreads.
func (c *Collection) SetMaxThreads(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxThreads = n
}

func (c *Collection) MaxThreads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxThreads > 0 {
		return c.maxThreads
	}
	return DefaultMaxThreads
}

func (c *Collection) SetPollInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pollInterval = d
}

// Run executes the collection to completion. Child failures are reported by
// IsSuccess, not by the returned error, which is only set when a run is
// already in flight.
func (c *Collection) Run(ctx context.Context) error {
	if !c.Start(ctx, false, c.execute) {
		return fmt.Errorf("%s: %w", c.Name(), ErrAlreadyRunning)
	}
	return nil
}

func (c *Collection) RunSync(ctx context.Context) {
	_ = c.Run(ctx)
}

func (c *Collection) RunAsync(ctx context.Context) {
	c.Start(ctx, true, c.execute)
}

func (c *Collection) Stats() Stats {
	progress := c.Progress()
	running := c.IsRunning()

	c.mu.Lock()
	st := Stats{
		Name:         c.Name(),
		Parallel:     c.parallel,
		MaxThreads:   c.limit,
		Total:        c.total,
		Completed:    c.completed,
		Failed:       c.failed,
		InFlight:     c.inFlight.Size(),
		PeakInFlight: c.peak,
		Progress:     progress,
		Running:      running,
		Success:      c.aggregate,
	}
	active := make([]taskset.Task, 0, c.inFlight.Size())
	for _, v := range c.inFlight.Values() {
		active = append(active, v.(taskset.Task))
	}
	c.mu.Unlock()

	// child calls happen outside c.mu
	st.Active = make([]ActiveTask, 0, len(active))
	for _, t := range active {
		at := ActiveTask{Name: t.Name(), Progress: -1}
		if r, ok := t.(taskset.ProgressReporter); ok {
			at.Progress = r.Progress()
		}
		st.Active = append(st.Active, at)
	}

	return st
}

// Close releases the static children, closing those that implement
// io.Closer. A custom provider and its tasks are left to their owner.
func (c *Collection) Close() error {
	if c.IsRunning() {
		return fmt.Errorf("%s: close: %w", c.Name(), ErrAlreadyRunning)
	}

	c.mu.Lock()
	children := c.children
	c.children = nil
	c.auto = nil
	c.mu.Unlock()

	var errs []error
	for _, t := range children {
		if closer, ok := t.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", t.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
