// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the user's cosmetic settings: output color and log
// verbosity. It never affects where commands are stored.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ColorModes = []string{ColorAuto, ColorAlways, ColorNever}
	LogLevels  = []string{"debug", "info", "warn", "error"}
)

// Config represents the top-level application configuration
type Config struct {
	// Color controls ANSI coloring of CLI output (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// LogLevel is the minimum level written to the log file
	LogLevel string `yaml:"log_level,omitempty"`
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "lcmds", "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// ColorMode returns the configured color mode, defaulting to auto.
func (c Config) ColorMode() string {
	if c.Color == "" {
		return ColorAuto
	}
	return strings.ToLower(c.Color)
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return strings.ToLower(c.LogLevel)
}

// ApplyColor sets fatih/color's global switch from the color mode. In auto
// mode the library's own terminal detection is kept.
func (c Config) ApplyColor() {
	switch c.ColorMode() {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}
}

func ValidColorMode(mode string) bool {
	return slices.Contains(ColorModes, strings.ToLower(mode))
}

func ValidLogLevel(level string) bool {
	return slices.Contains(LogLevels, strings.ToLower(level))
}
