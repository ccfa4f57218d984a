package gate

import (
	"context"
	"sync"
)

// Semaphore is a context-aware counting semaphore.
//
// Unlike a concurrency limiter, a Semaphore carries transferable credits:
// any goroutine may Release credits that a different goroutine will Acquire.
// A Semaphore created with zero credits blocks all acquirers until someone
// releases; that shape is used both as a sleep gate (binary, starts held)
// and as a batch-ready rendezvous (released N times at once).
type Semaphore struct {
	mu      sync.Mutex
	cond    *sync.Cond
	credits int
	waiters int
}

// NewSemaphore creates a semaphore holding the given number of credits.
// Negative values are clamped to 0.
func NewSemaphore(credits int) *Semaphore {
	if credits < 0 {
		credits = 0
	}
	s := &Semaphore{credits: credits}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Acquire blocks until a credit is available or the context is cancelled.
// Returns nil on success, or the context error if cancelled.
func (s *Semaphore) Acquire(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Broadcast on context cancellation so blocked waiters wake up and can
	// return the context error.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.cond.Broadcast()
		case <-done:
		}
	}()

	s.waiters++
	for s.credits == 0 {
		if err := ctx.Err(); err != nil {
			s.waiters--
			return err
		}
		s.cond.Wait()
	}
	s.waiters--

	// Re-check context after waking: the wake may have been from cancellation.
	// Hand the wakeup on before leaving, since a credit is available and the
	// signal that woke us would otherwise be lost to the remaining waiters.
	if err := ctx.Err(); err != nil {
		s.cond.Signal()
		return err
	}

	s.credits--
	return nil
}

// TryAcquire takes a credit without blocking. Returns false if none is
// available.
func (s *Semaphore) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credits == 0 {
		return false
	}
	s.credits--
	return true
}

// Release adds one credit and wakes one waiting goroutine.
func (s *Semaphore) Release() {
	s.ReleaseN(1)
}

// ReleaseN adds n credits and wakes up to n waiting goroutines. Values of n
// below 1 are ignored.
func (s *Semaphore) ReleaseN(n int) {
	if n < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.credits += n
	for range n {
		s.cond.Signal()
	}
}

// Available returns the number of credits currently held by the semaphore.
func (s *Semaphore) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credits
}

// Waiters returns the number of goroutines currently blocked in Acquire.
func (s *Semaphore) Waiters() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiters
}
