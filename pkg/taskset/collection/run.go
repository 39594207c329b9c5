package collection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/core"
	"github.com/ib-77/taskset/pkg/taskset/provider"
)

type runSettings struct {
	provider provider.Provider
	parallel bool
	limit    int
	poll     time.Duration
}

func (c *Collection) execute(ctx context.Context) error {
	rs := c.prepare(ctx)
	log := core.GetLogger(ctx).With("collection", c.Name())

	total := rs.provider.Count()
	if total < 0 {
		total = 0
	}
	c.mu.Lock()
	c.total = total
	c.mu.Unlock()

	log.Debug("run started", "total", total, "parallel", rs.parallel, "max_threads", rs.limit)

	if rs.parallel {
		c.runParallel(ctx, log, rs)
	} else {
		c.runSequential(ctx, log, rs)
	}

	c.mu.Lock()
	completed, failed := c.completed, c.failed
	c.mu.Unlock()

	log.Debug("run finished", "completed", completed, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%s: %d of %d: %w", c.Name(), failed, completed, ErrChildrenFailed)
	}
	return nil
}

func (c *Collection) prepare(ctx context.Context) runSettings {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.custom
	if p == nil {
		c.auto = provider.NewList(c.children...)
		p = c.auto
	}

	limit := c.maxThreads
	if limit <= 0 {
		limit = core.GetWorkerMaxCount(ctx, DefaultMaxThreads)
	}
	if limit < 1 {
		limit = 1
	}

	poll := c.pollInterval
	if poll <= 0 {
		poll = core.GetPollInterval(ctx, core.DefaultPollInterval)
	}

	c.inFlight.Clear()
	c.limit = limit
	c.total = 0
	c.completed = 0
	c.failed = 0
	c.peak = 0
	c.aggregate = true

	return runSettings{provider: p, parallel: c.parallel, limit: limit, poll: poll}
}

func (c *Collection) runSequential(ctx context.Context, log *slog.Logger, rs runSettings) {
	for {
		t := rs.provider.Next()
		if taskset.IsNil(t) {
			return
		}

		if !c.admit(log, t) {
			continue
		}

		key := c.track(t)
		log.Debug("task dispatched", "task", t.Name())
		t.RunSync(ctx)
		c.untrack(key)

		c.complete(log, rs.provider, t)
	}
}

// admit rejects a task that is still running from an earlier dispatch or
// another owner. A rejected task is neither tracked nor counted.
func (c *Collection) admit(log *slog.Logger, t taskset.Task) bool {
	if t.IsRunning() {
		log.Warn("dispatch rejected", "task", t.Name(), "error", ErrAlreadyRunning)
		return false
	}
	return true
}

func (c *Collection) track(t taskset.Task) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.inFlight.Put(c.seq, t)
	if size := c.inFlight.Size(); size > c.peak {
		c.peak = size
	}
	return c.seq
}

func (c *Collection) untrack(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight.Remove(key)
}

func (c *Collection) inFlightLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight.Size()
}

// complete folds one finished task into the aggregate: outcome first, then
// the provider hook, then progress.
func (c *Collection) complete(log *slog.Logger, p provider.Provider, t taskset.Task) {
	ok := t.IsSuccess()

	c.mu.Lock()
	if !ok {
		c.failed++
		c.aggregate = false
	}
	c.mu.Unlock()

	c.notify(log, p, t)

	c.mu.Lock()
	c.completed++
	progress := stepProgress(c.completed, c.total)
	c.mu.Unlock()

	c.SetProgress(progress)
	log.Debug("task finished", "task", t.Name(), "success", ok, "progress", progress)
}

func (c *Collection) notify(log *slog.Logger, p provider.Provider, t taskset.Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("provider finish hook panicked", "task", t.Name(), "panic", r)
		}
	}()
	p.OnFinished(t)
}

func stepProgress(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return taskset.ClampProgress(float64(completed) * 100 / float64(total))
}
