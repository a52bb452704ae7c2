package input

import (
	"fmt"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/engine/cursor"
	"github.com/dshills/modeline/internal/input/key"
	"github.com/dshills/modeline/internal/input/mode"
)

// Result is one outcome of resolving a key event.
type Result interface {
	fmt.Stringer
	isResult()
}

// Insert asks for a key to be inserted into the active buffer.
type Insert struct {
	Event key.Event
}

// CursorIntent asks for a cursor motion on the active frame.
type CursorIntent struct {
	Motion cursor.Motion
}

// ModeChange reports that the resolver switched to Mode.
type ModeChange struct {
	Mode mode.Mode
}

// ActionResult carries an action for the host application.
type ActionResult struct {
	Action action.Action
}

func (Insert) isResult()       {}
func (CursorIntent) isResult() {}
func (ModeChange) isResult()   {}
func (ActionResult) isResult() {}

func (r Insert) String() string       { return "Insert(" + r.Event.String() + ")" }
func (r CursorIntent) String() string { return "Cursor(" + r.Motion.String() + ")" }
func (r ModeChange) String() string   { return "Mode(" + r.Mode.Name() + ")" }
func (r ActionResult) String() string { return "Action(" + r.Action.String() + ")" }

// Actions wraps actions as results.
func Actions(actions ...action.Action) []Result {
	out := make([]Result, len(actions))
	for i, a := range actions {
		out[i] = ActionResult{Action: a}
	}
	return out
}
