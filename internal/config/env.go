package config

import (
	"fmt"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel      = "MODELINE_LOG_LEVEL"
	EnvLogFile       = "MODELINE_LOG_FILE"
	EnvMacroLogLimit = "MODELINE_MACRO_LOG_LIMIT"
	EnvTabWidth      = "MODELINE_TAB_WIDTH"
)

// LookupFunc looks up an environment variable.
type LookupFunc func(name string) (string, bool)

// envSetters maps each environment variable to the setting it overrides.
var envSetters = map[string]func(*Config, string) error{
	EnvLogLevel: func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	},
	EnvLogFile: func(c *Config, v string) error {
		c.Logging.File = v
		return nil
	},
	EnvMacroLogLimit: func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Macro.LogLimit = n
		return nil
	},
	EnvTabWidth: func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.TabWidth = n
		return nil
	},
}

// ApplyEnv overrides settings from environment variables.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, set := range envSetters {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, v); err != nil {
			return fmt.Errorf("%s=%q: %w", name, v, err)
		}
	}
	return nil
}
