package provider

import (
	"sync"

	"github.com/ib-77/taskset/pkg/taskset"
)

type GeneratorHandlers struct {
	// Next produces the next task, nil when there is nothing left
	Next func() taskset.Task
	// OnFinished is optional
	OnFinished func(task taskset.Task)
}

// Generator produces tasks on demand. The total is declared up front by the
// caller and only feeds progress computation.
type Generator struct {
	handlers GeneratorHandlers
	total    int

	mu        sync.Mutex
	exhausted bool
}

func NewGenerator(total int, handlers GeneratorHandlers) *Generator {
	return &Generator{handlers: handlers, total: total}
}

func (g *Generator) Next() taskset.Task {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.exhausted || g.handlers.Next == nil {
		g.exhausted = true
		return nil
	}

	t := g.handlers.Next()
	if taskset.IsNil(t) {
		g.exhausted = true
		return nil
	}
	return t
}

func (g *Generator) Count() int {
	return g.total
}

func (g *Generator) OnFinished(task taskset.Task) {
	if g.handlers.OnFinished != nil {
		g.handlers.OnFinished(task)
	}
}
