package config

import (
	"strings"
	"testing"
	"time"

	"github.com/pgoodman/uwo-santa-clause/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Workshop.Elves != 9 || cfg.Workshop.Reindeer != 10 || cfg.Workshop.GroupSize != 3 {
		t.Errorf("default pools = %d/%d/%d, want 9/10/3",
			cfg.Workshop.Elves, cfg.Workshop.Reindeer, cfg.Workshop.GroupSize)
	}
}

func TestValidate_RejectsBadPools(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero elves", func(c *Config) { c.Workshop.Elves = 0 }},
		{"negative reindeer", func(c *Config) { c.Workshop.Reindeer = -1 }},
		{"zero group size", func(c *Config) { c.Workshop.GroupSize = 0 }},
		{"group larger than pool", func(c *Config) { c.Workshop.GroupSize = 12 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should reject the configuration")
			}
			if !errors.IsValidation(err) {
				t.Errorf("error should wrap a ValidationError, got %v", err)
			}
		})
	}
}

func TestValidate_RejectsBadDelays(t *testing.T) {
	cfg := Default()
	cfg.Delays.MinMs = 100
	cfg.Delays.MaxMs = 10

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate should reject max below min")
	}

	cfg = Default()
	cfg.Delays.MinMs = -5
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate should reject negative min")
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.Workshop.Elves = 0
	cfg.Workshop.Reindeer = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "workshop.elves") || !strings.Contains(msg, "workshop.reindeer") {
		t.Errorf("joined error should mention both fields, got %q", msg)
	}
}

func TestDelayConfig_Durations(t *testing.T) {
	d := DelayConfig{MinMs: 10, MaxMs: 250}

	if d.Min() != 10*time.Millisecond {
		t.Errorf("Min() = %v, want 10ms", d.Min())
	}
	if d.Max() != 250*time.Millisecond {
		t.Errorf("Max() = %v, want 250ms", d.Max())
	}
}

func TestYAML_RoundTripsKeys(t *testing.T) {
	data, err := Default().YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}

	for _, key := range []string{"workshop", "elves", "reindeer", "group_size", "delays", "narration"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("YAML output missing key %q:\n%s", key, data)
		}
	}
}
