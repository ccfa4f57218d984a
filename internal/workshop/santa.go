package workshop

import (
	"context"
	"fmt"

	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
)

// santa is the coordinator: the single long-lived loop that chooses between
// the two activities. Do not launch more than one.
type santa struct {
	st  *state
	bus *event.Bus
	log *logging.Logger
}

func newSanta(st *state, bus *event.Bus, log *logging.Logger) *santa {
	return &santa{st: st, bus: bus, log: log.WithActor("santa", 0)}
}

// run cycles available → asleep → woken → {prepare sleigh | help elves}.
// Preparing the sleigh is terminal: run returns nil with the busy gate
// still held, and the run winds down once the herd departs.
func (s *santa) run(ctx context.Context) error {
	for {
		// Checkpoint that Santa is not busy before going back to sleep.
		// The previous group's last elf releases this credit.
		if err := s.st.busy.Acquire(ctx); err != nil {
			return err
		}
		s.log.Debug("sleeping")
		s.bus.Publish(event.NewSantaSleepingEvent())
		s.st.busy.Release()

		if err := s.st.sleep.Acquire(ctx); err != nil {
			return err
		}
		s.log.Debug("woken", "herd", s.st.herd.current(), "waiting", s.st.line.Cardinality())
		s.bus.Publish(event.NewSantaWokenEvent())

		// Strict priority: a fully returned herd cannot be kept waiting
		// for elf service.
		if s.st.herd.current() >= s.st.herdSize {
			return s.prepareSleigh(ctx)
		}
		if s.st.line.Cardinality() >= s.st.groupSize {
			if err := s.helpElves(ctx); err != nil {
				return err
			}
		}
	}
}

// prepareSleigh locks Santa for the rest of the run and releases one
// batch-ready credit per reindeer. The busy gate is never released again:
// it is Christmas Eve and Santa has left the workshop.
func (s *santa) prepareSleigh(ctx context.Context) error {
	if err := s.st.busy.Acquire(ctx); err != nil {
		return err
	}

	s.log.Info("preparing sleigh", "herd", s.st.herdSize)
	s.bus.Publish(event.NewSantaPreparingSleighEvent(s.st.herdSize))
	s.st.batchReady.ReleaseN(s.st.herdSize)
	return nil
}

// helpElves takes exactly one group from the line and wakes each member.
// The busy gate acquired here is released by the last elf of the group; the
// next loop iteration blocks until then.
func (s *santa) helpElves(ctx context.Context) error {
	if err := s.st.busy.Acquire(ctx); err != nil {
		return err
	}
	if err := s.st.helping.reset(s.st.groupSize); err != nil {
		return fmt.Errorf("santa: %w", err)
	}

	waiting := s.st.line.Cardinality()
	group, err := s.st.line.TakeGroup(s.st.groupSize)
	if err != nil {
		return fmt.Errorf("santa: %w", err)
	}

	s.log.Info("helping elves", "group", group, "waiting", waiting)
	s.bus.Publish(event.NewSantaHelpingEvent(group, waiting))

	for _, id := range group {
		if err := s.st.wakeups.Fire(id); err != nil {
			return fmt.Errorf("santa: waking elf %d: %w", id, err)
		}
	}
	return nil
}
