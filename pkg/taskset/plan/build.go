package plan

import (
	"fmt"
	"time"

	"github.com/ib-77/taskset/pkg/taskset"
	"github.com/ib-77/taskset/pkg/taskset/collection"
)

// Build turns a plan tree into a collection. The root node must describe a
// collection.
func Build(root *Node, reg *Registry) (*collection.Collection, error) {
	if root == nil {
		return nil, invalidf("", "empty plan")
	}
	if !root.IsCollection() {
		return nil, invalidf(root.Name, "root must be a collection, got kind %q", root.Kind)
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	return buildCollection(root, reg, root.Name)
}

// LoadCollection loads the plan at path and builds it with reg.
func LoadCollection(path string, reg *Registry) (*collection.Collection, error) {
	root, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(root, reg)
}

func buildCollection(n *Node, reg *Registry, path string) (*collection.Collection, error) {
	c := collection.New(n.Name)
	c.SetParallel(n.Parallel)

	if n.MaxThreads < 0 {
		return nil, invalidf(path, "max_threads must be positive")
	}
	if n.MaxThreads > 0 {
		c.SetMaxThreads(n.MaxThreads)
	}

	if n.PollInterval != "" {
		d, err := time.ParseDuration(n.PollInterval)
		if err != nil || d <= 0 {
			return nil, invalidf(path, "bad poll_interval %q", n.PollInterval)
		}
		c.SetPollInterval(d)
	}

	for i := range n.Children {
		child := &n.Children[i]
		t, err := buildNode(child, reg, fmt.Sprintf("%s/%s", path, child.Name))
		if err != nil {
			return nil, err
		}
		c.AddChild(t)
	}
	return c, nil
}

func buildNode(n *Node, reg *Registry, path string) (taskset.Task, error) {
	if n.IsCollection() {
		return buildCollection(n, reg, path)
	}

	f, ok := reg.Lookup(n.Kind)
	if !ok {
		return nil, &PlanError{Kind: ErrUnknownKind, Path: path, Msg: n.Kind}
	}

	t, err := f(n.Name, n.Params)
	if err != nil {
		return nil, invalidf(path, "%v", err)
	}
	if taskset.IsNil(t) {
		return nil, invalidf(path, "factory for %q returned no task", n.Kind)
	}
	return t, nil
}
