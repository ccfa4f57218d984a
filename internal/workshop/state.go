package workshop

import (
	"github.com/pgoodman/uwo-santa-clause/internal/gate"
	"github.com/pgoodman/uwo-santa-clause/internal/waitroom"
)

// state is the shared run context handed to every actor at creation. All of
// it is allocated once, before any actor launches, and torn down with the
// run. No actor ever holds more than one of its guards at a time.
type state struct {
	elves     int
	herdSize  int
	groupSize int

	// busy marks Santa unavailable while he is deciding, helping, or
	// preparing the sleigh. One credit, held and released across actors:
	// the last elf of a group releases what Santa acquired, so this must
	// be a semaphore rather than a mutex.
	busy *gate.Semaphore

	// sleep is Santa's trigger. It starts with no credit; the Kth elf in
	// line or the Nth reindeer home releases it.
	sleep *gate.Semaphore

	// batchReady releases the herd. Santa credits it N times when the
	// sleigh is prepared; each reindeer consumes one credit.
	batchReady *gate.Semaphore

	// admission bounds how many elves can be mid-registration at once,
	// preventing a second group from partially forming while one is being
	// helped. Starts with K credits; the last helped elf returns all K.
	admission *gate.Semaphore

	// line is the set of elves waiting outside Santa's door.
	line *waitroom.Line

	// wakeups holds each elf's private one-shot notification slot.
	wakeups *gate.Arena

	// herd counts reindeer currently home, bounded by the batch size.
	herd *boundedCounter

	// helping counts elves still being helped in the current group.
	helping *boundedCounter
}

func newState(elves, herdSize, groupSize int) *state {
	return &state{
		elves:      elves,
		herdSize:   herdSize,
		groupSize:  groupSize,
		busy:       gate.NewSemaphore(1),
		sleep:      gate.NewSemaphore(0),
		batchReady: gate.NewSemaphore(0),
		admission:  gate.NewSemaphore(groupSize),
		line:       waitroom.NewLine(),
		wakeups:    gate.NewArena(elves),
		herd:       newBoundedCounter("herd count", herdSize),
		helping:    newBoundedCounter("help counter", groupSize),
	}
}
