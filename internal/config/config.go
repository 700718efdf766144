// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the configuration settings for the application.
type Config struct {
	LogFolder      string `json:"log_folder" toml:"log_folder"`
	InfoLog        string `json:"info_log" toml:"info_log"`
	ErrorLog       string `json:"error_log" toml:"error_log"`
	CommandLog     string `json:"command_log" toml:"command_log"`
	LogLevel       string `json:"log_level" toml:"log_level"`
	LogFormat      string `json:"log_format" toml:"log_format"`
	HistoryFile    string `json:"history_file" toml:"history_file"`
	Color          string `json:"color" toml:"color"`
	JournalEnabled bool   `json:"journal_enabled" toml:"journal_enabled"`
	JournalDriver  string `json:"journal_driver" toml:"journal_driver"`
	JournalPath    string `json:"journal_path" toml:"journal_path"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultConfig returns the settings used when no configuration file is
// given. They do not touch the filesystem.
func DefaultConfig() *Config {
	return &Config{
		InfoLog:       "info.log",
		ErrorLog:      "errors.log",
		CommandLog:    "commands.log",
		LogLevel:      "warn",
		LogFormat:     "text",
		Color:         ColorAuto,
		JournalDriver: "sqlite3",
		JournalPath:   "./data/journal.db",
	}
}

// ConfigLoad loads the configuration from path. An empty path yields the
// defaults. If the file doesn't exist, it is created with the defaults.
// Files ending in .toml are decoded as TOML, anything else as JSON.
func ConfigLoad(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %v", err)
			}
		}
		if err := ConfigSave(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}
		return cfg, nil
	}

	if isTOML(path) {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %v", err)
		}
	} else {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
		if err := json.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigSave saves the provided configuration to path.
func ConfigSave(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}
	defer file.Close()

	if isTOML(path) {
		if err := toml.NewEncoder(file).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %v", err)
		}
		return nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %v", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: expected auto, always or never", c.Color)
	}
	switch c.JournalDriver {
	case "sqlite3", "sqlite", "bolt":
	default:
		return fmt.Errorf("invalid journal driver %q: expected sqlite3, sqlite or bolt", c.JournalDriver)
	}
	if c.JournalEnabled && c.JournalPath == "" {
		return fmt.Errorf("journal is enabled but journal_path is empty")
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
