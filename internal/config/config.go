package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display   DisplayConfig   `json:"display"`
	Reminders RemindersConfig `json:"reminders"`
	Tracker   TrackerConfig   `json:"tracker"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	WeightUnit string `json:"weight_unit"`
}

// RemindersConfig controls the weigh-in reminder loop
type RemindersConfig struct {
	Enabled       bool    `json:"enabled"`
	IntervalHours float64 `json:"interval_hours"`
}

// TrackerConfig holds activity-tracking settings
type TrackerConfig struct {
	// FallbackWeightKg is used for calorie math when no weight
	// has been logged yet
	FallbackWeightKg float64 `json:"fallback_weight_kg"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			WeightUnit: "kg",
		},
		Reminders: RemindersConfig{
			Enabled:       true,
			IntervalHours: 6,
		},
		Tracker: TrackerConfig{
			FallbackWeightKg: 70,
		},
	}
}

// Load reads the configuration from ~/.weightless/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.WeightUnit == "" {
		cfg.Display.WeightUnit = defaults.Display.WeightUnit
	}
	if cfg.Reminders.IntervalHours == 0 {
		cfg.Reminders.IntervalHours = defaults.Reminders.IntervalHours
	}
	if cfg.Tracker.FallbackWeightKg == 0 {
		cfg.Tracker.FallbackWeightKg = defaults.Tracker.FallbackWeightKg
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.weightless/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a default config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has sensible values
func (c *Config) Validate() error {
	if c.Display.WeightUnit != "" && c.Display.WeightUnit != "kg" && c.Display.WeightUnit != "lb" {
		return fmt.Errorf("display.weight_unit must be \"kg\" or \"lb\", got %q", c.Display.WeightUnit)
	}
	if c.Reminders.IntervalHours < 0 {
		return fmt.Errorf("reminders.interval_hours must not be negative, got %v", c.Reminders.IntervalHours)
	}
	if c.Tracker.FallbackWeightKg < 0 {
		return fmt.Errorf("tracker.fallback_weight_kg must not be negative, got %v", c.Tracker.FallbackWeightKg)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".weightless", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".weightless"), nil
}
