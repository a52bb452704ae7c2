// Package config loads modeline's settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. The config file, TOML or YAML by extension
//  3. Environment variables (MODELINE_*)
//  4. Command-line flags, applied by the caller
//
// A config file looks like:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/modeline.log"
//
//	[editor]
//	notification_timeout = "3s"
//	tab_inserts_spaces = true
//	tab_width = 4
//
//	[macro]
//	log_limit = 10000
//
//	[keymap.normal]
//	"<C-q>" = ":q"
//	"H" = "cursor.moveLineStart"
//
//	[plugins]
//	scripts = ["~/.config/modeline/plugins/hello.lua"]
//
// Watcher reloads the file when it changes on disk.
package config
