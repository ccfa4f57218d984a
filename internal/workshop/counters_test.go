package workshop

import (
	"sync"
	"testing"

	"github.com/pgoodman/uwo-santa-clause/internal/errors"
)

func TestBoundedCounter_IncrementDecrement(t *testing.T) {
	c := newBoundedCounter("herd count", 2)

	if v, err := c.increment(); err != nil || v != 1 {
		t.Fatalf("increment = %d, %v; want 1, nil", v, err)
	}
	if v, err := c.increment(); err != nil || v != 2 {
		t.Fatalf("increment = %d, %v; want 2, nil", v, err)
	}
	if v, err := c.decrement(); err != nil || v != 1 {
		t.Fatalf("decrement = %d, %v; want 1, nil", v, err)
	}
	if c.current() != 1 {
		t.Errorf("current() = %d, want 1", c.current())
	}
}

func TestBoundedCounter_UpperBoundViolation(t *testing.T) {
	c := newBoundedCounter("herd count", 1)

	if _, err := c.increment(); err != nil {
		t.Fatalf("first increment: %v", err)
	}
	_, err := c.increment()
	if err == nil {
		t.Fatal("increment beyond the bound should fail")
	}
	if !errors.IsInvariant(err) {
		t.Errorf("error should be an InvariantError, got %v", err)
	}
}

func TestBoundedCounter_NegativeViolation(t *testing.T) {
	c := newBoundedCounter("help counter", 3)

	_, err := c.decrement()
	if err == nil {
		t.Fatal("decrement below zero should fail")
	}
	if !errors.IsInvariant(err) {
		t.Errorf("error should be an InvariantError, got %v", err)
	}
}

func TestBoundedCounter_ResetRequiresIdle(t *testing.T) {
	c := newBoundedCounter("help counter", 3)

	if err := c.reset(3); err != nil {
		t.Fatalf("reset on an idle counter: %v", err)
	}

	// A reset while the previous window is still open means two service
	// windows would overlap.
	err := c.reset(3)
	if err == nil {
		t.Fatal("reset on a busy counter should fail")
	}
	if !errors.IsInvariant(err) {
		t.Errorf("error should be an InvariantError, got %v", err)
	}
}

func TestBoundedCounter_ThresholdObservedOnce(t *testing.T) {
	const herd = 10
	c := newBoundedCounter("herd count", herd)

	var wg sync.WaitGroup
	crossings := make(chan struct{}, herd)
	for range herd {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := c.increment(); err == nil && v == herd {
				crossings <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(crossings)

	var count int
	for range crossings {
		count++
	}
	if count != 1 {
		t.Errorf("threshold observed by %d goroutines, want exactly 1", count)
	}
}
