package command

import (
	"errors"
	"strings"
	"unicode"

	"github.com/dshills/modeline/internal/action"
)

// Errors returned by the registry.
var (
	// ErrEmptyName indicates a registration without a name.
	ErrEmptyName = errors.New("command name cannot be empty")

	// ErrNilCommand indicates a registration without an implementation.
	ErrNilCommand = errors.New("command cannot be nil")
)

// Command executes command-line text and returns the actions it requests.
type Command interface {
	Act(text string) ([]action.Action, error)
}

// Func adapts a function to the Command interface.
type Func func(text string) ([]action.Action, error)

// Act calls f(text).
func (f Func) Act(text string) ([]action.Action, error) {
	return f(text)
}

// Name returns the command name in text: everything before the first
// whitespace or line break.
func Name(text string) string {
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		return text[:i]
	}
	return text
}

// Args returns the whitespace-separated arguments after the name.
func Args(text string) []string {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
