package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/modeline/internal/input/key"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[logging]
level = "debug"
file = "/tmp/m.log"

[editor]
notification_timeout = "3s"
tab_inserts_spaces = true
tab_width = 2

[macro]
log_limit = 500

[keymap.normal]
"<C-q>" = ":q"
"H" = "cursor.moveLineStart"

[plugins]
scripts = ["a.lua", "b.lua"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/m.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Editor.NotificationTimeout.Duration != 3*time.Second {
		t.Errorf("NotificationTimeout = %v, want 3s", cfg.Editor.NotificationTimeout)
	}
	if !cfg.Editor.TabInsertsSpaces || cfg.Editor.TabWidth != 2 {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Macro.LogLimit != 500 {
		t.Errorf("LogLimit = %d, want 500", cfg.Macro.LogLimit)
	}
	if len(cfg.Plugins.Scripts) != 2 {
		t.Errorf("Scripts = %v", cfg.Plugins.Scripts)
	}

	km, err := cfg.BuildKeymap()
	if err != nil {
		t.Fatalf("BuildKeymap() error = %v", err)
	}
	if got, _ := km.Lookup(key.MustParse("<C-q>")); got != ":q" {
		t.Errorf("keymap <C-q> = %q, want :q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
logging:
  level: warn
editor:
  notification_timeout: 500ms
  tab_width: 8
keymap:
  normal:
    "<C-q>": ":wq"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Editor.NotificationTimeout.Duration != 500*time.Millisecond {
		t.Errorf("NotificationTimeout = %v", cfg.Editor.NotificationTimeout)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Keymap.Normal["<C-q>"] != ":wq" {
		t.Errorf("Keymap = %v", cfg.Keymap.Normal)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != Default().Logging.Level {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "")
	if _, err := Load(path); err != nil {
		t.Errorf("Load(empty yaml) error = %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		check   func(error) bool
	}{
		{"unknown extension", "config.ini", "x=1", func(err error) bool { return errors.Is(err, ErrUnknownFormat) }},
		{"bad toml", "bad.toml", "[logging\nlevel=", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe)
		}},
		{"unknown toml key", "extra.toml", "[editor]\ncolour = \"red\"\n", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe)
		}},
		{"unknown yaml key", "extra.yaml", "editor:\n  colour: red\n", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe)
		}},
		{"bad duration", "dur.toml", "[editor]\nnotification_timeout = \"soon\"\n", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe)
		}},
		{"invalid value", "invalid.toml", "[editor]\ntab_width = 0\n", func(err error) bool {
			return errors.Is(err, ErrValidationFailed)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := Load(path)
			if err == nil || !tt.check(err) {
				t.Errorf("Load() error = %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"tab width", func(c *Config) { c.Editor.TabWidth = 40 }, "editor.tab_width"},
		{"log limit", func(c *Config) { c.Macro.LogLimit = -1 }, "macro.log_limit"},
		{"timeout", func(c *Config) { c.Editor.NotificationTimeout.Duration = -time.Second }, "editor.notification_timeout"},
		{"keymap", func(c *Config) { c.Keymap.Normal = map[string]string{"x": "no.such"} }, "keymap.normal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("Validate() error = %v, want ValidationError at %s", err, tt.path)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:      "debug",
		EnvLogFile:       "/var/log/m.log",
		EnvMacroLogLimit: "42",
		EnvTabWidth:      "3",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/var/log/m.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Macro.LogLimit != 42 || cfg.Editor.TabWidth != 3 {
		t.Errorf("LogLimit = %d, TabWidth = %d", cfg.Macro.LogLimit, cfg.Editor.TabWidth)
	}

	env[EnvMacroLogLimit] = "many"
	if err := ApplyEnv(Default(), lookup); err == nil {
		t.Error("ApplyEnv() with a non-numeric limit should fail")
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	path := writeFile(t, t.TempDir(), "config.toml", "[logging]\nlevel = \"debug\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %q, want env override error", cfg.Logging.Level)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"a.toml", FormatTOML, false},
		{"A.TOML", FormatTOML, false},
		{"a.yaml", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.json", "", true},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	out, _ := d.MarshalText()
	if string(out) != "1m30s" {
		t.Errorf("MarshalText() = %q", out)
	}
}
