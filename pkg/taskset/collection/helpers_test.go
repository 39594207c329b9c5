package collection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/work"
)

// runTracker counts concurrent executions across a set of tasks
type runTracker struct {
	active  atomic.Int32
	peak    atomic.Int32
	started atomic.Int32

	mu    sync.Mutex
	order []string
}

func (p *runTracker) task(name string, d time.Duration, fail bool) *work.Func {
	return work.NewFunc(name, func(ctx context.Context, progress taskset.ProgressSetter) error {
		p.started.Add(1)
		n := p.active.Add(1)
		for {
			old := p.peak.Load()
			if n <= old || p.peak.CompareAndSwap(old, n) {
				break
			}
		}
		defer p.active.Add(-1)

		p.mu.Lock()
		p.order = append(p.order, name)
		p.mu.Unlock()

		if d > 0 {
			time.Sleep(d)
		}
		if fail {
			return errors.New(name + " failed")
		}
		return nil
	})
}

func (p *runTracker) startOrder() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]string, len(p.order))
	copy(cp, p.order)
	return cp
}

// plainTask hides Done so the collection can only detect completion by polling
type plainTask struct {
	taskset.Task
}

// closerTask counts Close calls
type closerTask struct {
	*work.Func
	closed *atomic.Int32
	err    error
}

func (c *closerTask) Close() error {
	c.closed.Add(1)
	return c.err
}

// parentReadingTask inspects its parent collection whenever it is polled
type parentReadingTask struct {
	*work.Func
	parent *Collection
	polls  *atomic.Int32
}

func (p *parentReadingTask) IsRunning() bool {
	_ = p.parent.Stats()
	p.polls.Add(1)
	return p.Func.IsRunning()
}
