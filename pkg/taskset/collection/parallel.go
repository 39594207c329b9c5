package collection

import (
	"context"
	"log/slog"
	"time"

	"github.com/ib-77/taskset/pkg/taskset"
)

// runParallel keeps at most rs.limit tasks in flight. Each pass folds at most
// one finished task and fills at most one free slot; a pass doing neither
// waits for a completion signal or the poll interval, whichever comes first.
func (c *Collection) runParallel(ctx context.Context, log *slog.Logger, rs runSettings) {
	wake := make(chan struct{}, 1)
	exhausted := false

	for {
		progressed := false

		if t, found := c.takeFinished(); found {
			c.complete(log, rs.provider, t)
			progressed = true
		}

		if !exhausted && c.inFlightLen() < rs.limit {
			t := rs.provider.Next()
			if taskset.IsNil(t) {
				exhausted = true
			} else if !c.admit(log, t) {
				progressed = true
			} else {
				c.track(t)
				log.Debug("task dispatched", "task", t.Name())
				t.RunAsync(ctx)
				watch(t, wake)
				progressed = true
			}
		}

		if exhausted && c.inFlightLen() == 0 {
			return
		}
		if !progressed {
			idle(wake, rs.poll)
		}
	}
}

// takeFinished removes and returns the first finished task in dispatch order.
// Tasks are polled outside c.mu since IsRunning may call back into c.
func (c *Collection) takeFinished() (taskset.Task, bool) {
	type entry struct {
		key  interface{}
		task taskset.Task
	}

	c.mu.Lock()
	entries := make([]entry, 0, c.inFlight.Size())
	it := c.inFlight.Iterator()
	for it.Next() {
		entries = append(entries, entry{key: it.Key(), task: it.Value().(taskset.Task)})
	}
	c.mu.Unlock()

	for _, e := range entries {
		if !e.task.IsRunning() {
			c.mu.Lock()
			c.inFlight.Remove(e.key)
			c.mu.Unlock()
			return e.task, true
		}
	}
	return nil, false
}

// watch signals wake when a task able to notify finishes. Tasks without
// Done are only seen by polling.
func watch(t taskset.Task, wake chan<- struct{}) {
	n, ok := t.(taskset.Notifier)
	if !ok {
		return
	}

	done := n.Done()
	go func() {
		<-done
		select {
		case wake <- struct{}{}:
		default:
		}
	}()
}

func idle(wake <-chan struct{}, poll time.Duration) {
	timer := time.NewTimer(poll)
	defer timer.Stop()

	select {
	case <-wake:
	case <-timer.C:
	}
}
