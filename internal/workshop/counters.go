package workshop

import (
	"sync"

	"github.com/pgoodman/uwo-santa-clause/internal/errors"
)

// boundedCounter is an integer confined to [0, max], guarded by its own
// mutex. Leaving the legal range is a protocol bug, reported as an
// InvariantError naming the counter and never recovered from.
type boundedCounter struct {
	mu    sync.Mutex
	value int
	max   int
	name  string
}

func newBoundedCounter(name string, max int) *boundedCounter {
	return &boundedCounter{name: name, max: max}
}

// increment adds one and returns the new value. The caller that receives
// exactly max is the one that crossed the threshold; the lock guarantees at
// most one caller sees each crossing.
func (c *boundedCounter) increment() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value++
	if c.value > c.max {
		return c.value, errors.NewInvariantError(c.name+" within bound", c.value)
	}
	return c.value, nil
}

// decrement subtracts one and returns the new value. The caller that
// receives zero is the last member of the current window or batch.
func (c *boundedCounter) decrement() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value--
	if c.value < 0 {
		return c.value, errors.NewInvariantError(c.name+" non-negative", c.value)
	}
	return c.value, nil
}

// reset sets the counter to v at the start of a window. The counter must be
// zero when reset: a non-zero value means the previous window never closed,
// which would let two windows overlap.
func (c *boundedCounter) reset(v int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value != 0 {
		return errors.NewInvariantError(c.name+" idle between windows", c.value)
	}
	c.value = v
	return nil
}

// current returns the counter's value.
func (c *boundedCounter) current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
