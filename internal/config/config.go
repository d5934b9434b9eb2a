package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

type Config struct {
	LogLevel   string           `json:"log_level"`
	Oscillator OscillatorConfig `json:"oscillator"`
}

type OscillatorConfig struct {
	RateHz       float64 `json:"rate_hz"`       // sweep frequency, must be > 0
	DepthPercent int     `json:"depth_percent"` // peak-to-peak swing around center
	CapPercent   int     `json:"cap_percent"`   // amplitude multiplier
}

// Load reads the config from disk or returns defaults
func Load() (*Config, error) {
	path := configPath()

	// Default config
	cfg := &Config{
		LogLevel: "info",
		Oscillator: OscillatorConfig{
			RateHz:       0.2,
			DepthPercent: 80,
			CapPercent:   100,
		},
	}

	// Load existing config if it exists
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Sanitize()
	return cfg, nil
}

// Sanitize repairs values a hand-edited config file could break. A zero or
// negative sweep rate would make the oscillator's sample interval undefined.
func (c *Config) Sanitize() {
	if c.Oscillator.RateHz <= 0 {
		c.Oscillator.RateHz = 0.2
	}
	if c.Oscillator.DepthPercent < 0 {
		c.Oscillator.DepthPercent = 0
	}
	if c.Oscillator.DepthPercent > 100 {
		c.Oscillator.DepthPercent = 100
	}
	if c.Oscillator.CapPercent < 0 {
		c.Oscillator.CapPercent = 0
	}
	if c.Oscillator.CapPercent > 100 {
		c.Oscillator.CapPercent = 100
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := configPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "balance-tray", "config.json")
}
