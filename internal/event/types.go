package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "elf.in_line", "reindeer.hitched")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Elf Events
// -----------------------------------------------------------------------------

// ElfWorkingEvent is emitted when an elf starts a stretch of work.
type ElfWorkingEvent struct {
	baseEvent
	ID int // Elf identity
}

// NewElfWorkingEvent creates an ElfWorkingEvent.
func NewElfWorkingEvent(id int) ElfWorkingEvent {
	return ElfWorkingEvent{
		baseEvent: newBaseEvent("elf.working"),
		ID:        id,
	}
}

// ElfInLineEvent is emitted when an elf joins the line outside Santa's door.
type ElfInLineEvent struct {
	baseEvent
	ID      int // Elf identity
	Waiting int // Line cardinality including this elf
}

// NewElfInLineEvent creates an ElfInLineEvent.
func NewElfInLineEvent(id, waiting int) ElfInLineEvent {
	return ElfInLineEvent{
		baseEvent: newBaseEvent("elf.in_line"),
		ID:        id,
		Waiting:   waiting,
	}
}

// ElfWakingSantaEvent is emitted by the elf whose arrival completes a group.
type ElfWakingSantaEvent struct {
	baseEvent
	ID int // Elf identity
}

// NewElfWakingSantaEvent creates an ElfWakingSantaEvent.
func NewElfWakingSantaEvent(id int) ElfWakingSantaEvent {
	return ElfWakingSantaEvent{
		baseEvent: newBaseEvent("elf.waking_santa"),
		ID:        id,
	}
}

// ElfHelpedEvent is emitted when an elf has received Santa's help.
type ElfHelpedEvent struct {
	baseEvent
	ID        int // Elf identity
	Remaining int // Members of the current group still being helped
}

// NewElfHelpedEvent creates an ElfHelpedEvent.
func NewElfHelpedEvent(id, remaining int) ElfHelpedEvent {
	return ElfHelpedEvent{
		baseEvent: newBaseEvent("elf.helped"),
		ID:        id,
		Remaining: remaining,
	}
}

// -----------------------------------------------------------------------------
// Reindeer Events
// -----------------------------------------------------------------------------

// ReindeerAwayEvent is emitted when a reindeer leaves on vacation.
type ReindeerAwayEvent struct {
	baseEvent
	ID int // Reindeer identity
}

// NewReindeerAwayEvent creates a ReindeerAwayEvent.
func NewReindeerAwayEvent(id int) ReindeerAwayEvent {
	return ReindeerAwayEvent{
		baseEvent: newBaseEvent("reindeer.away"),
		ID:        id,
	}
}

// ReindeerReturnedEvent is emitted when a reindeer registers its return.
type ReindeerReturnedEvent struct {
	baseEvent
	ID   int // Reindeer identity
	Back int // Reindeer back so far, including this one
}

// NewReindeerReturnedEvent creates a ReindeerReturnedEvent.
func NewReindeerReturnedEvent(id, back int) ReindeerReturnedEvent {
	return ReindeerReturnedEvent{
		baseEvent: newBaseEvent("reindeer.returned"),
		ID:        id,
		Back:      back,
	}
}

// ReindeerLastBackEvent is emitted by the reindeer whose return completes
// the herd. That reindeer is the one that wakes Santa.
type ReindeerLastBackEvent struct {
	baseEvent
	ID int // Reindeer identity
}

// NewReindeerLastBackEvent creates a ReindeerLastBackEvent.
func NewReindeerLastBackEvent(id int) ReindeerLastBackEvent {
	return ReindeerLastBackEvent{
		baseEvent: newBaseEvent("reindeer.last_back"),
		ID:        id,
	}
}

// ReindeerHitchedEvent is emitted when a reindeer hitches to the sleigh.
type ReindeerHitchedEvent struct {
	baseEvent
	ID        int // Reindeer identity
	Remaining int // Reindeer still waiting to hitch
}

// NewReindeerHitchedEvent creates a ReindeerHitchedEvent.
func NewReindeerHitchedEvent(id, remaining int) ReindeerHitchedEvent {
	return ReindeerHitchedEvent{
		baseEvent: newBaseEvent("reindeer.hitched"),
		ID:        id,
		Remaining: remaining,
	}
}

// -----------------------------------------------------------------------------
// Santa Events
// -----------------------------------------------------------------------------

// SantaSleepingEvent is emitted when Santa goes to sleep awaiting a trigger.
type SantaSleepingEvent struct {
	baseEvent
}

// NewSantaSleepingEvent creates a SantaSleepingEvent.
func NewSantaSleepingEvent() SantaSleepingEvent {
	return SantaSleepingEvent{baseEvent: newBaseEvent("santa.sleeping")}
}

// SantaWokenEvent is emitted when Santa wakes to evaluate the thresholds.
type SantaWokenEvent struct {
	baseEvent
}

// NewSantaWokenEvent creates a SantaWokenEvent.
func NewSantaWokenEvent() SantaWokenEvent {
	return SantaWokenEvent{baseEvent: newBaseEvent("santa.woken")}
}

// SantaHelpingEvent is emitted when Santa takes a group of elves to help.
type SantaHelpingEvent struct {
	baseEvent
	Group   []int // Identities of the elves being helped
	Waiting int   // Line cardinality before the group was taken
}

// NewSantaHelpingEvent creates a SantaHelpingEvent.
func NewSantaHelpingEvent(group []int, waiting int) SantaHelpingEvent {
	return SantaHelpingEvent{
		baseEvent: newBaseEvent("santa.helping"),
		Group:     group,
		Waiting:   waiting,
	}
}

// SantaPreparingSleighEvent is emitted when Santa readies the sleigh and
// releases the waiting herd. This is the terminal activity of a run.
type SantaPreparingSleighEvent struct {
	baseEvent
	Herd int // Size of the batch being released
}

// NewSantaPreparingSleighEvent creates a SantaPreparingSleighEvent.
func NewSantaPreparingSleighEvent(herd int) SantaPreparingSleighEvent {
	return SantaPreparingSleighEvent{
		baseEvent: newBaseEvent("santa.preparing_sleigh"),
		Herd:      herd,
	}
}

// -----------------------------------------------------------------------------
// Run Events
// -----------------------------------------------------------------------------

// RunCompletedEvent is emitted exactly once, when the run ends.
type RunCompletedEvent struct {
	baseEvent
	Success bool   // True for the normal departure path
	Reason  string // Human-readable completion reason
}

// NewRunCompletedEvent creates a RunCompletedEvent.
func NewRunCompletedEvent(success bool, reason string) RunCompletedEvent {
	return RunCompletedEvent{
		baseEvent: newBaseEvent("run.completed"),
		Success:   success,
		Reason:    reason,
	}
}
