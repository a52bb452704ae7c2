package config

import (
	"errors"
	"strings"
	"time"

	"github.com/dshills/modeline/internal/input/keymap"
)

// Config holds all settings.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Macro   MacroConfig   `toml:"macro" yaml:"macro"`
	Keymap  KeymapConfig  `toml:"keymap" yaml:"keymap"`
	Plugins PluginsConfig `toml:"plugins" yaml:"plugins"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File is the log file path. The terminal owns stdout, so logs never go there.
	File string `toml:"file" yaml:"file"`
}

// EditorConfig configures editing behavior.
type EditorConfig struct {
	// NotificationTimeout overrides how long notifications stay visible.
	// Zero keeps each notification's own duration.
	NotificationTimeout Duration `toml:"notification_timeout" yaml:"notification_timeout"`

	TabInsertsSpaces bool `toml:"tab_inserts_spaces" yaml:"tab_inserts_spaces"`
	TabWidth         int  `toml:"tab_width" yaml:"tab_width"`
}

// MacroConfig configures the macro engine.
type MacroConfig struct {
	// LogLimit bounds the key log. Zero means unbounded.
	LogLimit int `toml:"log_limit" yaml:"log_limit"`
}

// KeymapConfig holds keymap overrides: key notation to binding name.
type KeymapConfig struct {
	Normal map[string]string `toml:"normal" yaml:"normal"`
}

// PluginsConfig lists Lua scripts to load.
type PluginsConfig struct {
	Scripts []string `toml:"scripts" yaml:"scripts"`
}

// Duration is a time.Duration written as a string such as "2s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Editor: EditorConfig{
			TabInsertsSpaces: false,
			TabWidth:         4,
		},
		Macro: MacroConfig{LogLimit: 0},
	}
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	if !logLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: c.Logging.Level})
	}
	if c.Editor.NotificationTimeout.Duration < 0 {
		errs = append(errs, &ValidationError{Path: "editor.notification_timeout", Message: "must not be negative", Value: c.Editor.NotificationTimeout})
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, &ValidationError{Path: "editor.tab_width", Message: "must be between 1 and 16", Value: c.Editor.TabWidth})
	}
	if c.Macro.LogLimit < 0 {
		errs = append(errs, &ValidationError{Path: "macro.log_limit", Message: "must not be negative", Value: c.Macro.LogLimit})
	}
	if len(c.Keymap.Normal) > 0 {
		if err := keymap.Default().Apply(c.Keymap.Normal); err != nil {
			errs = append(errs, &ValidationError{Path: "keymap.normal", Message: err.Error(), Value: len(c.Keymap.Normal)})
		}
	}
	return errors.Join(errs...)
}

// BuildKeymap returns the default keymap with the configured overrides.
func (c *Config) BuildKeymap() (*keymap.Keymap, error) {
	km := keymap.Default()
	if err := km.Apply(c.Keymap.Normal); err != nil {
		return nil, err
	}
	return km, nil
}
