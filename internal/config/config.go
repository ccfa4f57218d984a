// Package config defines the simulator configuration, loaded through viper
// from a YAML file, environment variables, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete simulator configuration
type Config struct {
	Workshop  WorkshopConfig  `mapstructure:"workshop" yaml:"workshop"`
	Delays    DelayConfig     `mapstructure:"delays" yaml:"delays"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Narration NarrationConfig `mapstructure:"narration" yaml:"narration"`
}

// WorkshopConfig fixes the actor pool sizes for a run
type WorkshopConfig struct {
	// Elves is the size of the elf pool (E)
	Elves int `mapstructure:"elves" yaml:"elves"`
	// Reindeer is the size of the herd and of the one departing batch (N)
	Reindeer int `mapstructure:"reindeer" yaml:"reindeer"`
	// GroupSize is how many elves Santa helps at a time (K)
	GroupSize int `mapstructure:"group_size" yaml:"group_size"`
}

// DelayConfig controls the simulated work and travel pauses
type DelayConfig struct {
	// MinMs is the minimum pause in milliseconds
	MinMs int `mapstructure:"min_ms" yaml:"min_ms"`
	// MaxMs is the maximum pause in milliseconds
	MaxMs int `mapstructure:"max_ms" yaml:"max_ms"`
	// Seed seeds the random source; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// LoggingConfig controls the structured run log
type LoggingConfig struct {
	// Level is the minimum level to log: DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level" yaml:"level"`
	// File is the log file path; empty logs to stderr
	File string `mapstructure:"file" yaml:"file"`
}

// NarrationConfig controls the console narration of the run
type NarrationConfig struct {
	// Enabled turns the narrator on or off
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Color enables lipgloss styling of narration lines
	Color bool `mapstructure:"color" yaml:"color"`
}

// Min returns the minimum pause as a duration.
func (d DelayConfig) Min() time.Duration { return time.Duration(d.MinMs) * time.Millisecond }

// Max returns the maximum pause as a duration.
func (d DelayConfig) Max() time.Duration { return time.Duration(d.MaxMs) * time.Millisecond }

// SetDefaults registers default values for all settings with viper.
// Pool sizes default to the classic problem statement: nine elves helped
// three at a time, ten reindeer.
func SetDefaults() {
	viper.SetDefault("workshop.elves", 9)
	viper.SetDefault("workshop.reindeer", 10)
	viper.SetDefault("workshop.group_size", 3)

	viper.SetDefault("delays.min_ms", 10)
	viper.SetDefault("delays.max_ms", 250)
	viper.SetDefault("delays.seed", 0)

	viper.SetDefault("logging.level", "INFO")
	viper.SetDefault("logging.file", "")

	viper.SetDefault("narration.enabled", true)
	viper.SetDefault("narration.color", true)
}

// Load unmarshals the current viper state into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the default configuration without consulting viper.
func Default() *Config {
	return &Config{
		Workshop:  WorkshopConfig{Elves: 9, Reindeer: 10, GroupSize: 3},
		Delays:    DelayConfig{MinMs: 10, MaxMs: 250},
		Logging:   LoggingConfig{Level: "INFO"},
		Narration: NarrationConfig{Enabled: true, Color: true},
	}
}

// YAML renders the configuration as a YAML document, suitable for writing
// a starter config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// ConfigDir returns the directory where the config file lives.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "santa")
}
