package timer

import (
	"context"
	"time"
)

// Tickable is a timer engine advanced one second at a time.
type Tickable interface {
	Tick() bool
}

// tickFunc adapts a plain tick function to Tickable.
type tickFunc func() bool

func (f tickFunc) Tick() bool { return f() }

// TickableFunc wraps a function as a Tickable.
func TickableFunc(f func() bool) Tickable { return tickFunc(f) }

// Runner drives a timer engine from a clock ticker. All timers share this one
// loop shape, so cancellation is enforced in one place: the context stops the
// ticker and returns.
type Runner struct {
	clock Clock
}

// NewRunner creates a Runner over the given clock.
func NewRunner(clock Clock) *Runner {
	return &Runner{clock: clock}
}

// Run ticks the engine once per second until it reports done or the context
// is cancelled. onTick, when non-nil, observes every tick after the engine
// advanced.
func (r *Runner) Run(ctx context.Context, engine Tickable, onTick func()) error {
	ticker := r.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			done := engine.Tick()
			if onTick != nil {
				onTick()
			}
			if done {
				return nil
			}
		}
	}
}
