// Package event provides a pub-sub event bus for decoupled observation of
// the simulation.
//
// The protocol actors publish an event at every state transition (an elf
// starting work, lining up, being helped; a reindeer returning, hitching,
// departing; Santa sleeping, waking, choosing an activity) without knowing
// who consumes them. The console narrator and the structured log sink both
// subscribe; neither exerts backpressure on the protocol beyond the
// synchronous handler call itself.
//
// # Main Types
//
//   - [Event]: interface all events implement, providing EventType() and Timestamp()
//   - [Bus]: synchronous pub-sub dispatcher, safe for concurrent use
//   - [Handler]: function type for event handlers
//
// # Thread Safety
//
// [Bus] is safe for concurrent use. Handlers are called synchronously and
// protected against panics: a panicking handler cannot prevent delivery to
// the remaining handlers.
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - elf.working, elf.in_line, elf.waking_santa, elf.helped
//   - reindeer.away, reindeer.returned, reindeer.last_back, reindeer.hitched
//   - santa.sleeping, santa.woken, santa.helping, santa.preparing_sleigh
//   - run.completed
package event
