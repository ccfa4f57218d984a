// Package delay provides the simulated "work" and "travel" time consumed by
// elves and reindeer between protocol steps. The source is injectable so
// tests can run the protocol with zero or deterministic delays.
package delay

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Source produces one bounded pause per call. Wait returns nil after the
// pause elapses, or the context error if cancelled first.
type Source interface {
	Wait(ctx context.Context) error
}

// Random is a Source producing uniformly distributed pauses in [Min, Max].
// It is safe for concurrent use by every actor in the run.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
	min time.Duration
	max time.Duration
}

// NewRandom creates a Random source seeded with seed. A seed of 0 seeds from
// the clock. If max < min the bounds are swapped.
func NewRandom(min, max time.Duration, seed uint64) *Random {
	if max < min {
		min, max = max, min
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed)),
		min: min,
		max: max,
	}
}

// Wait sleeps for a random duration within the source's bounds.
func (r *Random) Wait(ctx context.Context) error {
	r.mu.Lock()
	d := r.min
	if span := r.max - r.min; span > 0 {
		d += time.Duration(r.rng.Int64N(int64(span) + 1))
	}
	r.mu.Unlock()

	return sleep(ctx, d)
}

// Fixed is a Source that always pauses for the same duration. Useful in
// tests that need a delay but not randomness.
type Fixed time.Duration

// Wait sleeps for the fixed duration.
func (f Fixed) Wait(ctx context.Context) error {
	return sleep(ctx, time.Duration(f))
}

// None is a Source that returns immediately. It keeps liveness tests fast
// while preserving every interleaving the scheduler can produce.
type None struct{}

// Wait returns immediately, or the context error if already cancelled.
func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
