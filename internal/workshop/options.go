package workshop

import (
	"github.com/pgoodman/uwo-santa-clause/internal/delay"
	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
)

// Option configures optional Run collaborators.
type Option func(*runConfig)

type runConfig struct {
	bus *event.Bus
	log *logging.Logger
	src delay.Source
}

// WithBus sets the event bus actors publish to. Defaults to a fresh bus
// with no subscribers.
func WithBus(bus *event.Bus) Option {
	return func(rc *runConfig) {
		rc.bus = bus
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log *logging.Logger) Option {
	return func(rc *runConfig) {
		rc.log = log
	}
}

// WithDelaySource sets the simulated work/travel delay source. Defaults to
// no delay, which keeps tests fast while preserving every interleaving.
func WithDelaySource(src delay.Source) Option {
	return func(rc *runConfig) {
		rc.src = src
	}
}
