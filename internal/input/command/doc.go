// Package command provides the registry of command-line commands entered
// after ":" in Command mode.
//
// A command is looked up by its name, the text before the first
// whitespace or line break, and acts on the whole command text:
//
//	reg := command.NewRegistry()
//	command.RegisterBuiltins(reg)
//	actions := reg.Execute("echo hello world")
//
// Execute never fails. Unknown names and command errors come back as
// notification actions.
package command
