package plan

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/work"
)

// Factory creates the leaf task of a plan node
type Factory func(name string, params Params) (taskset.Task, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds kind to f, replacing any previous factory.
func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

func (r *Registry) Lookup(kind string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[kind]
	return f, ok
}

func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// DefaultRegistry knows the built-in kinds:
//   - sleep: waits params.duration, fails when params.fail is true
//   - fail: fails immediately
//   - lua: runs params.script with the remaining params exposed to it
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("sleep", func(name string, params Params) (taskset.Task, error) {
		d, err := params.Duration("duration")
		if err != nil {
			return nil, err
		}
		return work.NewSleep(name, d, params.Bool("fail")), nil
	})

	r.Register("fail", func(name string, params Params) (taskset.Task, error) {
		return work.NewSleep(name, 0, true), nil
	})

	r.Register("lua", func(name string, params Params) (taskset.Task, error) {
		script, ok := params.String("script")
		if !ok || script == "" {
			return nil, fmt.Errorf("lua task needs a script")
		}
		rest := make(map[string]any, len(params))
		for k, v := range params {
			if k != "script" {
				rest[k] = v
			}
		}
		return work.NewLua(name, script, rest), nil
	})

	return r
}
