package config

import "github.com/pgoodman/uwo-santa-clause/internal/errors"

// Validate checks the configuration for values the protocol cannot run
// with. All violations are reported before any actor launches.
func (c *Config) Validate() error {
	var errs []error

	if c.Workshop.Elves < 1 {
		errs = append(errs, errors.NewValidationError(
			"workshop.elves", c.Workshop.Elves, "must be at least 1"))
	}
	if c.Workshop.Reindeer < 1 {
		errs = append(errs, errors.NewValidationError(
			"workshop.reindeer", c.Workshop.Reindeer, "must be at least 1"))
	}
	if c.Workshop.GroupSize < 1 {
		errs = append(errs, errors.NewValidationError(
			"workshop.group_size", c.Workshop.GroupSize, "must be at least 1"))
	}
	if c.Workshop.GroupSize >= 1 && c.Workshop.Elves >= 1 && c.Workshop.GroupSize > c.Workshop.Elves {
		errs = append(errs, errors.NewValidationError(
			"workshop.group_size", c.Workshop.GroupSize, "must not exceed the elf pool"))
	}

	if c.Delays.MinMs < 0 {
		errs = append(errs, errors.NewValidationError(
			"delays.min_ms", c.Delays.MinMs, "must not be negative"))
	}
	if c.Delays.MaxMs < c.Delays.MinMs {
		errs = append(errs, errors.NewValidationError(
			"delays.max_ms", c.Delays.MaxMs, "must not be below delays.min_ms"))
	}

	return errors.Join(errs...)
}
