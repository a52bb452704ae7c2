// Package mode defines the editor's input modes.
//
// Mode is a closed set of variants. Each variant carries only the state
// that is valid while it is active:
//
//   - Normal: navigation and commands
//   - Insert: text entry, remembering whether it was entered with "a"
//   - Visual: a selection
//   - Command: the command line being typed after ":"
//
// A mode value is never mutated into another variant. Transitions build a
// fresh value, so a command line cannot outlive Command mode.
package mode
