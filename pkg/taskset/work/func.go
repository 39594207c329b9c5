package work

import (
	"context"
	"fmt"
	"time"

	"github.com/ib-77/taskset/pkg/taskset"
)

// Fn is the body of a Func task. Returning nil means success.
type Fn func(ctx context.Context, progress taskset.ProgressSetter) error

// Func is a task running a Go function
type Func struct {
	*Base
	fn Fn
}

func NewFunc(name string, fn Fn) *Func {
	return &Func{Base: NewBase(name), fn: fn}
}

func (f *Func) RunSync(ctx context.Context) {
	f.Start(ctx, false, f.execute)
}

func (f *Func) RunAsync(ctx context.Context) {
	f.Start(ctx, true, f.execute)
}

func (f *Func) execute(ctx context.Context) error {
	if f.fn == nil {
		return ErrNoFunc
	}
	return f.fn(ctx, f.Base)
}

// NewSleep returns a task that waits for d, reporting progress in ten steps,
// and fails at the end when fail is set. The wait stops early on ctx.
func NewSleep(name string, d time.Duration, fail bool) *Func {
	return NewFunc(name, func(ctx context.Context, progress taskset.ProgressSetter) error {
		const steps = 10
		tick := d / steps

		for i := 1; i <= steps; i++ {
			if tick > 0 {
				timer := time.NewTimer(tick)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
			}
			progress.SetProgress(float64(i * 100 / steps))
		}

		if fail {
			return fmt.Errorf("%s: failed after %s", name, d)
		}
		return nil
	})
}
