package workshop

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/pgoodman/uwo-santa-clause/internal/delay"
	"github.com/pgoodman/uwo-santa-clause/internal/errors"
	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
)

// Config holds the fixed pool sizes for a run.
type Config struct {
	// Elves is the elf pool size (E).
	Elves int
	// Reindeer is the herd size and the departing batch size (N).
	Reindeer int
	// GroupSize is how many elves are helped at a time (K). Must not
	// exceed Elves.
	GroupSize int
}

// Result describes how a run ended.
type Result struct {
	// Completed is true when the run ended through its one intended
	// termination path: the last reindeer's departure.
	Completed bool
	// Err is the invariant violation that stopped the run, or nil for
	// normal completion and operator interruption alike.
	Err error
}

// Run owns the shared state and the lifecycle of one simulation: one Santa,
// E elves, and N reindeer, each on its own goroutine.
type Run struct {
	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc

	st  *state
	bus *event.Bus
	log *logging.Logger
	src delay.Source

	departed     chan struct{} // closed by the reindeer completing the batch
	departedOnce sync.Once
	done         chan struct{} // closed when every actor has exited
	finishOnce   sync.Once
	result       Result
}

// New creates a Run for the given pool sizes. The configuration is
// validated here, before any primitive is allocated or actor launched.
func New(cfg Config, opts ...Option) (*Run, error) {
	if cfg.Elves < 1 {
		return nil, errors.NewValidationError("elves", cfg.Elves, "must be at least 1")
	}
	if cfg.Reindeer < 1 {
		return nil, errors.NewValidationError("reindeer", cfg.Reindeer, "must be at least 1")
	}
	if cfg.GroupSize < 1 {
		return nil, errors.NewValidationError("group size", cfg.GroupSize, "must be at least 1")
	}
	if cfg.GroupSize > cfg.Elves {
		return nil, errors.NewValidationError("group size", cfg.GroupSize, "must not exceed the elf pool")
	}

	rc := &runConfig{}
	for _, opt := range opts {
		opt(rc)
	}
	if rc.bus == nil {
		rc.bus = event.NewBus()
	}
	if rc.log == nil {
		rc.log = logging.NopLogger()
	}
	if rc.src == nil {
		rc.src = delay.None{}
	}

	return &Run{
		st:       newState(cfg.Elves, cfg.Reindeer, cfg.GroupSize),
		bus:      rc.bus,
		log:      rc.log,
		src:      rc.src,
		departed: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Bus returns the event bus the run's actors publish to.
func (r *Run) Bus() *event.Bus { return r.bus }

// Start launches every actor goroutine. It returns an error if the run was
// already started. The run ends on its own when the last reindeer departs;
// cancel the context (or call Stop) to interrupt it early.
func (r *Run) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return errors.ErrRunStarted
	}
	r.started = true

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.log.Info("run starting",
		"elves", r.st.elves, "reindeer", r.st.herdSize, "group_size", r.st.groupSize)

	p := pool.New().WithContext(ctx).WithFirstError().WithCancelOnError()
	p.Go(newSanta(r.st, r.bus, r.log).run)
	for id := range r.st.elves {
		p.Go(newElf(id, r.st, r.bus, r.log, r.src).run)
	}
	for id := range r.st.herdSize {
		p.Go(newReindeer(id, r.st, r.bus, r.log, r.src, r.signalDeparture).run)
	}

	// Normal completion: the departed batch cancels the context so Santa
	// and the elves, parked on their gates, unwind.
	go func() {
		select {
		case <-r.departed:
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		r.finish(p.Wait())
		close(r.done)
	}()

	return nil
}

// Wait blocks until every actor has exited and returns how the run ended.
func (r *Run) Wait() Result {
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()

	if !started {
		return Result{Err: errors.ErrRunNotStarted}
	}
	<-r.done
	return r.result
}

// Stop interrupts the run and blocks until every actor has exited. It is
// idempotent: the second and later calls (and a Stop after normal
// completion) have no observable effect.
func (r *Run) Stop() error {
	r.mu.Lock()
	if !r.started || r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	cancel := r.cancel
	r.mu.Unlock()

	cancel()
	<-r.done
	return nil
}

// signalDeparture is handed to each reindeer; the one that completes the
// batch invokes it. Counter atomicity already ensures a single caller; the
// once-guard keeps a broken counter from turning into a double close.
func (r *Run) signalDeparture() {
	r.departedOnce.Do(func() {
		close(r.departed)
	})
}

// finish records the run's outcome and publishes the completion event,
// exactly once, after every actor has exited.
func (r *Run) finish(err error) {
	r.finishOnce.Do(func() {
		completed := false
		select {
		case <-r.departed:
			completed = true
		default:
		}

		// Cancellation is how the run unwinds, on the normal path and on
		// interrupt alike; only other errors are failures.
		if errors.Is(err, context.Canceled) {
			err = nil
		}

		switch {
		case err != nil:
			r.result = Result{Err: err}
			r.log.Error("run failed", "error", err.Error())
			r.bus.Publish(event.NewRunCompletedEvent(false, err.Error()))
		case completed:
			r.result = Result{Completed: true}
			r.log.Info("run completed", "reason", "all reindeer departed")
			r.bus.Publish(event.NewRunCompletedEvent(true, "all reindeer departed"))
		default:
			r.result = Result{}
			r.log.Info("run interrupted")
			r.bus.Publish(event.NewRunCompletedEvent(false, "interrupted"))
		}
	})
}
