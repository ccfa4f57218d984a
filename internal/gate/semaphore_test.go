package gate

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSemaphore_BasicAcquireRelease(t *testing.T) {
	sem := NewSemaphore(2)
	ctx := context.Background()

	if err := sem.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	if sem.Available() != 1 {
		t.Errorf("Available() = %d, want 1", sem.Available())
	}

	if err := sem.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire: %v", err)
	}
	if sem.Available() != 0 {
		t.Errorf("Available() = %d, want 0", sem.Available())
	}

	sem.Release()
	if sem.Available() != 1 {
		t.Errorf("after release: Available() = %d, want 1", sem.Available())
	}
}

func TestSemaphore_BlocksWithoutCredit(t *testing.T) {
	sem := NewSemaphore(0)
	ctx := context.Background()

	// Acquire on an empty semaphore should block. Use a channel to detect it.
	acquired := make(chan struct{})
	go func() {
		_ = sem.Acquire(ctx)
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("Acquire on an empty semaphore should have blocked")
	case <-time.After(50 * time.Millisecond):
		// Expected: still blocked.
	}

	sem.Release()
	select {
	case <-acquired:
		// Unblocked as expected.
	case <-time.After(time.Second):
		t.Fatal("Acquire did not unblock after Release")
	}
}

func TestSemaphore_CreditsTransferBetweenGoroutines(t *testing.T) {
	// A goroutine that never acquired may Release; the sleep gate depends
	// on that transfer.
	sem := NewSemaphore(0)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- sem.Acquire(ctx)
	}()

	go sem.Release()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Acquire: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("credit released by another goroutine was not received")
	}
}

func TestSemaphore_ReleaseNWakesNWaiters(t *testing.T) {
	const n = 5
	sem := NewSemaphore(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	released := make(chan struct{}, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx); err == nil {
				released <- struct{}{}
			}
		}()
	}

	// Let all goroutines reach the wait.
	deadline := time.Now().Add(time.Second)
	for sem.Waiters() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Waiters() = %d, want %d", sem.Waiters(), n)
		}
		time.Sleep(time.Millisecond)
	}

	sem.ReleaseN(n)
	wg.Wait()

	if len(released) != n {
		t.Errorf("released %d waiters, want %d", len(released), n)
	}
	if sem.Available() != 0 {
		t.Errorf("Available() = %d, want 0 after all credits consumed", sem.Available())
	}
}

func TestSemaphore_ContextCancellation(t *testing.T) {
	sem := NewSemaphore(0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- sem.Acquire(ctx)
	}()

	// Give the goroutine time to block, then cancel.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Acquire returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Acquire did not return after context cancellation")
	}

	// A cancelled Acquire must not have consumed a credit.
	sem.Release()
	if sem.Available() != 1 {
		t.Errorf("Available() = %d, want 1", sem.Available())
	}
}

func TestSemaphore_TryAcquire(t *testing.T) {
	sem := NewSemaphore(1)

	if !sem.TryAcquire() {
		t.Error("TryAcquire should succeed with a credit available")
	}
	if sem.TryAcquire() {
		t.Error("TryAcquire should fail with no credits")
	}

	sem.Release()
	if !sem.TryAcquire() {
		t.Error("TryAcquire should succeed after Release")
	}
}

func TestSemaphore_NegativeAndZeroReleaseIgnored(t *testing.T) {
	sem := NewSemaphore(0)

	sem.ReleaseN(0)
	sem.ReleaseN(-3)
	if sem.Available() != 0 {
		t.Errorf("Available() = %d, want 0", sem.Available())
	}
}
