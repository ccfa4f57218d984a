package gate

import (
	"context"

	"github.com/pgoodman/uwo-santa-clause/internal/errors"
)

// Signal is a one-shot wakeup: it starts un-fired, one owner waits on it,
// and one peer fires it. Capacity of one means a fire that arrives before
// the owner's wait is not lost. A Signal is reusable across cycles: each
// fire releases exactly one wait.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates an un-fired Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Fire wakes the owner. The protocol guarantees at most one outstanding fire
// per wait; a duplicate fire while one is already pending is dropped rather
// than queued, so a bug upstream cannot grant the owner extra wakeups.
func (s *Signal) Fire() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until the signal is fired or the context is cancelled.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Arena is a fixed pool of per-identity Signals, allocated once at startup
// and reused for every cycle of the owning actor. Slot i belongs to the pool
// member with identity i for the lifetime of the run.
type Arena struct {
	slots []*Signal
}

// NewArena allocates an arena of size signals, all un-fired.
func NewArena(size int) *Arena {
	slots := make([]*Signal, size)
	for i := range slots {
		slots[i] = NewSignal()
	}
	return &Arena{slots: slots}
}

// Size returns the number of slots in the arena.
func (a *Arena) Size() int {
	return len(a.slots)
}

// Fire wakes the owner of slot id.
func (a *Arena) Fire(id int) error {
	if id < 0 || id >= len(a.slots) {
		return errors.ErrIdentityOutOfRange
	}
	a.slots[id].Fire()
	return nil
}

// Wait blocks on slot id until it is fired or the context is cancelled.
func (a *Arena) Wait(ctx context.Context, id int) error {
	if id < 0 || id >= len(a.slots) {
		return errors.ErrIdentityOutOfRange
	}
	return a.slots[id].Wait(ctx)
}
