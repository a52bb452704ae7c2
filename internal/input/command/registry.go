package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/modeline/internal/action"
)

// SourceBuiltin is the source recorded by Register.
const SourceBuiltin = "builtin"

type entry struct {
	cmd         Command
	description string
	source      string
}

// Suggestion is a command name offered for completion.
type Suggestion struct {
	Name        string
	Description string
}

// Registry maps command names to commands.
type Registry struct {
	commands map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]entry)}
}

// Register adds cmd under name. An existing command with the same name is
// replaced.
func (r *Registry) Register(name string, cmd Command, description string) error {
	return r.RegisterFrom(SourceBuiltin, name, cmd, description)
}

// RegisterFrom adds cmd under name and records where it came from.
func (r *Registry) RegisterFrom(source, name string, cmd Command, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(name, func(c rune) bool { return c == ' ' || c == '\t' || c == '\n' }) >= 0 {
		return fmt.Errorf("command name %q: must not contain whitespace", name)
	}
	if f, ok := cmd.(Func); cmd == nil || ok && f == nil {
		return fmt.Errorf("%w: %q", ErrNilCommand, name)
	}
	r.commands[name] = entry{cmd: cmd, description: description, source: source}
	return nil
}

// Unregister removes a command. It reports whether the command existed.
func (r *Registry) Unregister(name string) bool {
	if _, ok := r.commands[name]; !ok {
		return false
	}
	delete(r.commands, name)
	return true
}

// UnregisterBySource removes every command registered from source and
// returns how many were removed.
func (r *Registry) UnregisterBySource(source string) int {
	count := 0
	for name, e := range r.commands {
		if e.source == source {
			delete(r.commands, name)
			count++
		}
	}
	return count
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Query returns the command named by text. Only exact names match.
func (r *Registry) Query(text string) (Command, bool) {
	e, ok := r.commands[Name(text)]
	if !ok {
		return nil, false
	}
	return e.cmd, true
}

// Search returns the commands whose names start with prefix, sorted by name.
func (r *Registry) Search(prefix string) []Suggestion {
	var out []Suggestion
	for name, e := range r.commands {
		if strings.HasPrefix(name, prefix) {
			out = append(out, Suggestion{Name: name, Description: e.description})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Execute runs the command named by text. Failures become notifications.
func (r *Registry) Execute(text string) []action.Action {
	cmd, ok := r.Query(text)
	if !ok {
		return []action.Action{UnknownCommand(text)}
	}

	actions, err := cmd.Act(text)
	if err != nil {
		return []action.Action{
			action.Notify(action.LevelError, fmt.Sprintf("%s: %v", Name(text), err), action.LongNotice),
		}
	}
	return actions
}

// UnknownCommand returns the notification for text that names no command.
func UnknownCommand(text string) action.AttachNotification {
	return action.Notify(action.LevelFail, fmt.Sprintf("Command '%s' doesn't exist", text), action.LongNotice)
}
