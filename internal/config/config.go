// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/smartchat/internal/util"
)

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the complete smartchat configuration.
type Config struct {
	// BotName and UserName label transcript lines.
	BotName  string `toml:"bot_name" json:"bot_name"`
	UserName string `toml:"user_name" json:"user_name"`

	// Greeting is the first bot line shown when a session starts.
	Greeting string `toml:"greeting" json:"greeting"`

	// TypingDelayMs is the pause before a reply is appended. Zero replies at once.
	TypingDelayMs int `toml:"typing_delay_ms" json:"typing_delay_ms"`

	// KnowledgeFile replaces the built-in topics when set.
	KnowledgeFile string `toml:"knowledge_file" json:"knowledge_file"`

	UI  UIConfig  `toml:"ui" json:"ui"`
	Log LogConfig `toml:"log" json:"log"`
}

// UIConfig controls the chat window.
type UIConfig struct {
	Title           string `toml:"title" json:"title"`
	Theme           string `toml:"theme" json:"theme"` // dark, light, auto
	TimestampFormat string `toml:"timestamp_format" json:"timestamp_format"`
	ShowGreeting    bool   `toml:"show_greeting" json:"show_greeting"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level    string `toml:"level" json:"level"`       // debug, info, warn, error
	Encoding string `toml:"encoding" json:"encoding"` // console, json
	File     string `toml:"file" json:"file"`         // empty: stderr in line modes, nowhere in the window
}

// DefaultTypingDelay is the reply delay when none is configured.
const DefaultTypingDelay = 500 * time.Millisecond

// MaxTypingDelayMs caps the configurable delay.
const MaxTypingDelayMs = 60_000

// DefaultGreeting is shown when a session starts.
const DefaultGreeting = "Hello! I'm SmartChatBot in Dark Mode 🌙\nType 'help' to learn what I can do."

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a configuration populated with built-in values.
func Default() *Config {
	return &Config{
		BotName:       "Bot",
		UserName:      "You",
		Greeting:      DefaultGreeting,
		TypingDelayMs: int(DefaultTypingDelay / time.Millisecond),
		UI: UIConfig{
			Title:           "🧠 Smart AI ChatBot (Dark Mode)",
			Theme:           "dark",
			TimestampFormat: "15:04",
			ShowGreeting:    true,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// TypingDelay returns the configured delay as a duration.
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.TypingDelayMs) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the smartchat configuration directory. SMARTCHAT_HOME
// overrides the default of ~/.smartchat.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SMARTCHAT_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".smartchat"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.smartchat/config.toml, then config.json, then falls back to
// defaults. Environment overrides are applied last. A file that exists but
// cannot be parsed is an error.
func Load() (*Config, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		return LoadFromPath(tomlPath)
	}

	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(jsonPath); statErr == nil {
		return LoadFromPath(jsonPath)
	}

	cfg := Default()
	return finish(cfg)
}

// LoadTOML decodes a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return ValidationError{Field: undecoded[0].String(), Message: "unknown setting"}
	}
	return fillDefaults(cfg)
}

// LoadJSON decodes a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads the file at path (JSON when it ends in .json, TOML
// otherwise) over the defaults, applies environment overrides and validates.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := fillDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults restores values a file blanked out.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if strings.TrimSpace(cfg.BotName) == "" {
		cfg.BotName = defaults.BotName
	}
	if strings.TrimSpace(cfg.UserName) == "" {
		cfg.UserName = defaults.UserName
	}
	if cfg.UI.Title == "" {
		cfg.UI.Title = defaults.UI.Title
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.TimestampFormat == "" {
		cfg.UI.TimestampFormat = defaults.UI.TimestampFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = defaults.Log.Encoding
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

const fileHeader = "# smartchat configuration file\n# Generated by smartchat init - edit with care\n\n"

// Save writes cfg to the default TOML path.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.EncodeTOML()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, append([]byte(fileHeader), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg as TOML without the file header.
func (c *Config) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes    = map[string]bool{"dark": true, "light": true, "auto": true}
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validEncodings = map[string]bool{"console": true, "json": true}
)

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.TypingDelayMs < 0 || c.TypingDelayMs > MaxTypingDelayMs {
		errs = append(errs, ValidationError{
			Field:   "typing_delay_ms",
			Message: fmt.Sprintf("must be between 0 and %d, got %d", MaxTypingDelayMs, c.TypingDelayMs),
		})
	}

	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	// A layout without any time verbs renders the literal text on every line.
	if time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC).Format(c.UI.TimestampFormat) == c.UI.TimestampFormat {
		errs = append(errs, ValidationError{
			Field:   "ui.timestamp_format",
			Message: fmt.Sprintf("'%s' is not a Go time layout", c.UI.TimestampFormat),
		})
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if !validEncodings[strings.ToLower(c.Log.Encoding)] {
		errs = append(errs, ValidationError{
			Field:   "log.encoding",
			Message: fmt.Sprintf("invalid encoding '%s', must be one of: console, json", c.Log.Encoding),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SMARTCHAT_TYPING_DELAY_MS: overrides typing_delay_ms (ignored unless an integer)
//   - SMARTCHAT_KNOWLEDGE_FILE: overrides knowledge_file
//   - SMARTCHAT_LOG_LEVEL: overrides log.level
//   - SMARTCHAT_LOG_FILE: overrides log.file
//   - SMARTCHAT_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SMARTCHAT_TYPING_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.TypingDelayMs = ms
		}
	}

	if v := os.Getenv("SMARTCHAT_KNOWLEDGE_FILE"); v != "" {
		c.KnowledgeFile = v
	}

	if v := os.Getenv("SMARTCHAT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv("SMARTCHAT_LOG_FILE"); v != "" {
		c.Log.File = v
	}

	if v := os.Getenv("SMARTCHAT_THEME"); v != "" {
		c.UI.Theme = v
	}
}
