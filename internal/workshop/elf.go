package workshop

import (
	"context"
	"fmt"

	"github.com/pgoodman/uwo-santa-clause/internal/delay"
	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
)

// elf repeats forever: work, line up, wait to be helped, repeat. Elves only
// stop when the run is cancelled out from under them.
type elf struct {
	id  int
	st  *state
	bus *event.Bus
	log *logging.Logger
	src delay.Source
}

func newElf(id int, st *state, bus *event.Bus, log *logging.Logger, src delay.Source) *elf {
	return &elf{id: id, st: st, bus: bus, log: log.WithActor("elf", id), src: src}
}

func (e *elf) run(ctx context.Context) error {
	for {
		e.bus.Publish(event.NewElfWorkingEvent(e.id))
		if err := e.src.Wait(ctx); err != nil {
			return err
		}

		// The admission gate keeps at most one group forming at a time:
		// while K elves are being helped, the next K-plus-first elf blocks
		// here rather than joining the line.
		if err := e.st.admission.Acquire(ctx); err != nil {
			return err
		}

		waiting := e.st.line.Insert(e.id)
		e.log.Debug("in line", "waiting", waiting)
		e.bus.Publish(event.NewElfInLineEvent(e.id, waiting))

		// Insert returns the cardinality it produced, so exactly one elf
		// observes the group completing and wakes Santa.
		if waiting == e.st.groupSize {
			e.bus.Publish(event.NewElfWakingSantaEvent(e.id))
			e.st.sleep.Release()
		}

		if err := e.st.wakeups.Wait(ctx, e.id); err != nil {
			return err
		}

		remaining, err := e.st.helping.decrement()
		if err != nil {
			return fmt.Errorf("elf %d: %w", e.id, err)
		}
		e.log.Debug("helped", "remaining", remaining)
		e.bus.Publish(event.NewElfHelpedEvent(e.id, remaining))

		// The last elf of the group closes the service window: Santa
		// becomes available again and the next group may start forming.
		if remaining == 0 {
			e.st.busy.Release()
			e.st.admission.ReleaseN(e.st.groupSize)
		}
	}
}
