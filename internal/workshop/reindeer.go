package workshop

import (
	"context"
	"fmt"

	"github.com/pgoodman/uwo-santa-clause/internal/delay"
	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
)

// reindeer runs once per process lifetime: vacation, return, rendezvous,
// hitch, depart. The last one to depart ends the run.
type reindeer struct {
	id  int
	st  *state
	bus *event.Bus
	log *logging.Logger
	src delay.Source

	// departed is called by the reindeer that completes the batch. The run
	// supervisor turns it into the process-wide completion signal instead
	// of the worker terminating the process itself.
	departed func()
}

func newReindeer(id int, st *state, bus *event.Bus, log *logging.Logger, src delay.Source, departed func()) *reindeer {
	return &reindeer{
		id:       id,
		st:       st,
		bus:      bus,
		log:      log.WithActor("reindeer", id),
		src:      src,
		departed: departed,
	}
}

func (r *reindeer) run(ctx context.Context) error {
	r.bus.Publish(event.NewReindeerAwayEvent(r.id))
	if err := r.src.Wait(ctx); err != nil {
		return err
	}

	back, err := r.st.herd.increment()
	if err != nil {
		return fmt.Errorf("reindeer %d: %w", r.id, err)
	}
	r.log.Debug("returned", "back", back)
	r.bus.Publish(event.NewReindeerReturnedEvent(r.id, back))

	// The counter's lock guarantees exactly one reindeer observes the herd
	// completing; that one fetches Santa.
	if back == r.st.herdSize {
		r.log.Info("last one back, waking santa")
		r.bus.Publish(event.NewReindeerLastBackEvent(r.id))
		r.st.sleep.Release()
	}

	// Santa is awake; wait for him to prepare the sleigh.
	if err := r.st.batchReady.Acquire(ctx); err != nil {
		return err
	}

	remaining, err := r.st.herd.decrement()
	if err != nil {
		return fmt.Errorf("reindeer %d: %w", r.id, err)
	}
	r.log.Debug("hitched", "remaining", remaining)
	r.bus.Publish(event.NewReindeerHitchedEvent(r.id, remaining))

	if remaining == 0 {
		r.log.Info("all hitched, departing")
		r.departed()
	}
	return nil
}
