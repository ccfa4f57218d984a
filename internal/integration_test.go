// Package internal contains integration tests that verify the packages work
// together: the protocol run publishing to the event bus, with the narrator
// and a structured logger attached the way the run command wires them.
package internal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
	"github.com/pgoodman/uwo-santa-clause/internal/narrate"
	"github.com/pgoodman/uwo-santa-clause/internal/workshop"
)

// TestRunWithNarrationAndLogging drives a full run with every collaborator
// attached and checks the observable outputs agree on how it ended.
func TestRunWithNarrationAndLogging(t *testing.T) {
	var console, logs bytes.Buffer

	bus := event.NewBus()
	narrate.New(&console, false).Attach(bus)
	logger := logging.NewWriterLogger(&logs, logging.LevelDebug)

	run, err := workshop.New(
		workshop.Config{Elves: 9, Reindeer: 10, GroupSize: 3},
		workshop.WithBus(bus),
		workshop.WithLogger(logger),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := run.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	results := make(chan workshop.Result, 1)
	go func() {
		results <- run.Wait()
	}()

	var res workshop.Result
	select {
	case res = <-results:
	case <-time.After(30 * time.Second):
		t.Fatal("run did not terminate")
	}

	if !res.Completed || res.Err != nil {
		t.Fatalf("run ended badly: completed=%v err=%v", res.Completed, res.Err)
	}

	out := console.String()
	for _, want := range []string{
		"preparing the sleigh",
		"Off to deliver presents",
		"Merry Christmas indeed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("narration missing %q:\n%s", want, out)
		}
	}

	logged := logs.String()
	for _, want := range []string{"run starting", "preparing sleigh", "run completed"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log stream missing %q", want)
		}
	}
}

// TestInterruptedRunStillNarratesTeardown stops a slow run early and checks
// the teardown narration still happens, exactly once.
func TestInterruptedRunStillNarratesTeardown(t *testing.T) {
	var console bytes.Buffer

	bus := event.NewBus()
	narrate.New(&console, false).Attach(bus)

	run, err := workshop.New(
		workshop.Config{Elves: 9, Reindeer: 10, GroupSize: 3},
		workshop.WithBus(bus),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := run.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()

	res := run.Wait()
	if res.Err != nil {
		t.Fatalf("interrupted run reported an error: %v", res.Err)
	}

	out := console.String()
	if got := strings.Count(out, "Merry Christmas indeed"); got != 1 {
		t.Errorf("teardown narration appeared %d times, want exactly 1:\n%s", got, out)
	}
}
