// Package narrate renders the run as human-readable console lines. The
// narrator is a plain event bus subscriber: the protocol never waits on it,
// and removing it changes nothing about the run.
package narrate

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/pgoodman/uwo-santa-clause/internal/event"
)

// Narrator writes one line per simulation event, in the voice of the
// original problem statement.
type Narrator struct {
	mu  sync.Mutex
	out io.Writer

	santa    lipgloss.Style
	elf      lipgloss.Style
	reindeer lipgloss.Style
	finale   lipgloss.Style
}

// New creates a Narrator writing to out. With color enabled, each actor
// population gets its own lipgloss style so interleaved lines stay readable.
func New(out io.Writer, color bool) *Narrator {
	n := &Narrator{out: out}
	if color {
		n.santa = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		n.elf = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		n.reindeer = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		n.finale = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	} else {
		plain := lipgloss.NewStyle()
		n.santa, n.elf, n.reindeer, n.finale = plain, plain, plain, plain
	}
	return n
}

// Attach subscribes the narrator to every event on the bus and returns the
// subscription ID.
func (n *Narrator) Attach(bus *event.Bus) string {
	return bus.SubscribeAll(n.handle)
}

func (n *Narrator) handle(e event.Event) {
	switch ev := e.(type) {
	case event.ElfWorkingEvent:
		n.printf(n.elf, "Elf %d is working...", ev.ID)
	case event.ElfInLineEvent:
		n.printf(n.elf, "Elf %d is in line for Santa's help (%d waiting).", ev.ID, ev.Waiting)
	case event.ElfWakingSantaEvent:
		n.printf(n.elf, "Elf %d: that's a full group, waking up Santa!", ev.ID)
	case event.ElfHelpedEvent:
		n.printf(n.elf, "Elf %d got Santa's help!", ev.ID)

	case event.ReindeerAwayEvent:
		n.printf(n.reindeer, "Reindeer %d is off to the Tropics!", ev.ID)
	case event.ReindeerReturnedEvent:
		n.printf(n.reindeer, "Reindeer %d is back from the Tropics (%d home).", ev.ID, ev.Back)
	case event.ReindeerLastBackEvent:
		n.printf(n.reindeer, "Reindeer %d: I'm the last one back, I'll get Santa!", ev.ID)
	case event.ReindeerHitchedEvent:
		n.printf(n.reindeer, "Reindeer %d is hitched to the sleigh!", ev.ID)

	case event.SantaSleepingEvent:
		n.printf(n.santa, "Santa: zzZZzZzzzZZzzz (sleeping)")
	case event.SantaWokenEvent:
		n.printf(n.santa, "Santa: I'm up, I'm up! Whaddya want?")
	case event.SantaHelpingEvent:
		n.printf(n.santa, "Santa: there are %d elves outside my door, helping %v.", ev.Waiting, ev.Group)
	case event.SantaPreparingSleighEvent:
		n.printf(n.santa, "Santa: all %d reindeer are home, preparing the sleigh!", ev.Herd)

	case event.RunCompletedEvent:
		if ev.Success {
			n.printf(n.santa, "Santa: Ho ho ho! Off to deliver presents!")
		}
		n.printf(n.finale, "... And that year was a Merry Christmas indeed!")
	}
}

func (n *Narrator) printf(style lipgloss.Style, format string, args ...any) {
	line := style.Render(fmt.Sprintf(format, args...))

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, line)
}
