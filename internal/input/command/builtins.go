package command

import (
	"strings"

	"github.com/dshills/modeline/internal/action"
)

// RegisterBuiltins registers the standard commands.
func RegisterBuiltins(r *Registry) {
	builtins := []struct {
		name string
		desc string
		fn   Func
	}{
		{"q", "Quits the editor", quit},
		{"w", "Writes the current buffer", write},
		{"wq", "Writes the current buffer and quits", writeQuit},
		{"echo", "Shows the arguments as a notification", echo},
		{"close", "Closes the current window", closeWindow},
		{"bnext", "Switches to the next window", nextWindow},
	}
	for _, b := range builtins {
		// Names and funcs are static and valid.
		_ = r.Register(b.name, b.fn, b.desc)
	}
}

func quit(string) ([]action.Action, error) {
	return []action.Action{action.Quit{}}, nil
}

func write(string) ([]action.Action, error) {
	return []action.Action{
		action.WriteActiveBuffer{},
		action.Notify(action.LevelInfo, "Wrote buffer", action.ShortNotice),
	}, nil
}

func writeQuit(string) ([]action.Action, error) {
	return []action.Action{action.WriteActiveBuffer{}, action.Quit{}}, nil
}

func echo(text string) ([]action.Action, error) {
	msg := strings.Join(Args(text), " ")
	return []action.Action{action.Notify(action.LevelInfo, msg, action.ShortNotice)}, nil
}

func closeWindow(string) ([]action.Action, error) {
	return []action.Action{action.CloseActiveBuffer{}}, nil
}

func nextWindow(string) ([]action.Action, error) {
	return []action.Action{action.NextBuffer{}}, nil
}
