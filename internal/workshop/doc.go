// Package workshop implements the workshop coordination protocol: one Santa,
// a pool of elves helped in groups of exactly K, and a herd of N reindeer
// released as one batch, coordinated entirely through blocking primitives
// with no central scheduler.
//
// # Main Types
//
//   - [Run]: owns the shared state, launches one goroutine per actor, and
//     supervises the run to completion
//   - [Config]: fixed pool sizes for a run (E elves, N reindeer, groups of K)
//   - [Result]: how the run ended
//
// # Protocol Shape
//
// Most of the semaphores here are not guarding shared memory; they are used
// to tell another actor that something can be done, and are left held or
// released on purpose between cycles. The few critical sections are small
// and single-lock: the waiting line, the herd counter, and the help counter
// are each mutated only under their own guard, and no actor ever waits for
// one guard while holding another. That absence of nested acquisition is
// what makes the protocol deadlock-free: a cycle in the wait-for graph
// cannot form.
//
// The two activities are mutually exclusive through the busy gate, and
// priority between them is strict: a fully returned herd always wins over a
// waiting elf group. Releasing the herd is the terminal activity; the run
// ends when the last reindeer departs.
package workshop
