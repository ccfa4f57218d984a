// Package gate provides the blocking primitives the simulation is built on:
// a counting semaphore, a one-shot wakeup signal, and an identity-indexed
// arena of wakeup signals.
//
// These are low-level on purpose. The protocol uses them the way classic
// semaphore solutions do: mostly not for mutual exclusion over shared data,
// but as a means for one actor to tell another that something can be done.
// Semaphores are left held or released on purpose, waiting for a peer to
// dispatch to them.
//
// # Main Types
//
//   - [Semaphore]: counting semaphore with context-aware blocking Acquire
//   - [Signal]: single-owner one-shot wakeup, reusable across cycles
//   - [Arena]: per-identity Signal slots allocated once at startup
//
// # Thread Safety
//
// All types are safe for concurrent use. A [Signal] additionally assumes the
// single-waiter/single-firer ownership described on its methods; the arena
// exists so that ownership is established once, at pool creation, and never
// renegotiated.
package gate
