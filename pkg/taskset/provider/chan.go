package provider

import (
	"context"
	"sync"

	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/core"
)

// Chan yields tasks received from a channel. Next blocks until a task arrives
// or the channel is closed.
type Chan struct {
	in    <-chan taskset.Task
	total int

	mu        sync.Mutex
	exhausted bool
}

func NewChan(in <-chan taskset.Task, total int) *Chan {
	return &Chan{in: in, total: total}
}

// NewChanFromSlice feeds tasks through a channel. Cancelling ctx stops the
// feed; tasks not yet received are never yielded.
func NewChanFromSlice(ctx context.Context, tasks []taskset.Task) *Chan {
	return NewChan(core.ToChanMany(ctx, tasks), len(tasks))
}

func (c *Chan) Next() taskset.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.exhausted || c.in == nil {
		c.exhausted = true
		return nil
	}

	for t := range c.in {
		if !taskset.IsNil(t) {
			return t
		}
	}
	c.exhausted = true
	return nil
}

func (c *Chan) Count() int {
	return c.total
}

func (c *Chan) OnFinished(taskset.Task) {}
