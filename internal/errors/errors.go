// Package errors provides centralized error definitions and error handling
// utilities for the simulator. It defines the three failure classes the run
// distinguishes: configuration errors caught before any actor launches,
// protocol invariant violations (always fatal, never retried), and run
// lifecycle errors.
//
// # Usage
//
// Creating errors:
//
//	// Configuration error, reported before the run starts
//	err := errors.NewValidationError("group_size", 12, "must not exceed the elf pool")
//
//	// Invariant violation, reported by the actor that observed it
//	err := errors.NewInvariantError("help counter non-negative", -1)
//
// Checking errors:
//
//	var inv *errors.InvariantError
//	if errors.As(err, &inv) { ... }
//
//	if errors.Is(err, errors.ErrRunStarted) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Run lifecycle sentinel errors
var (
	// ErrRunStarted indicates the run was asked to start twice.
	ErrRunStarted = New("run already started")
	// ErrRunNotStarted indicates Wait was called before Start.
	ErrRunNotStarted = New("run not started")
)

// Primitive sentinel errors
var (
	// ErrIdentityOutOfRange indicates an actor identity outside its pool.
	ErrIdentityOutOfRange = New("identity out of range")
	// ErrGroupUnavailable indicates a group was requested from a waiting
	// line holding fewer members than the group size.
	ErrGroupUnavailable = New("not enough members waiting for a full group")
)

// -----------------------------------------------------------------------------
// Invariant Violations
// -----------------------------------------------------------------------------

// InvariantError reports a protocol invariant leaving its legal range.
// The protocol has no recovery path for a broken invariant: the run stops
// and reports which invariant failed and the value observed.
type InvariantError struct {
	// Invariant names the violated property, e.g. "herd count within batch size".
	Invariant string
	// Observed is the out-of-range value that was seen.
	Observed int
}

// NewInvariantError creates an InvariantError for the named invariant.
func NewInvariantError(invariant string, observed int) *InvariantError {
	return &InvariantError{Invariant: invariant, Observed: observed}
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s (observed %d)", e.Invariant, e.Observed)
}

// -----------------------------------------------------------------------------
// Validation Errors
// -----------------------------------------------------------------------------

// ValidationError represents an invalid configuration value. These are
// detected at startup, before any actor launches.
type ValidationError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains why the value was rejected.
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// IsValidation returns true if err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return As(err, &ve)
}

// IsInvariant returns true if err is (or wraps) an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return As(err, &ie)
}
