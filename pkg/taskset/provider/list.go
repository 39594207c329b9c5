package provider

import (
	"sync"

	"github.com/ib-77/taskset/pkg/taskset"
)

// List serves a fixed sequence of tasks in registration order.
type List struct {
	tasks []taskset.Task

	mu     sync.Mutex
	cursor int
}

// NewList captures tasks; nil entries are dropped.
func NewList(tasks ...taskset.Task) *List {
	cp := make([]taskset.Task, 0, len(tasks))
	for _, t := range tasks {
		if !taskset.IsNil(t) {
			cp = append(cp, t)
		}
	}
	return &List{tasks: cp}
}

func (l *List) Next() taskset.Task {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cursor >= len(l.tasks) {
		return nil
	}
	t := l.tasks[l.cursor]
	l.cursor++
	return t
}

func (l *List) Count() int {
	return len(l.tasks)
}

func (l *List) OnFinished(taskset.Task) {}
