package editor

import (
	"errors"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/engine/buffer"
	"github.com/dshills/modeline/internal/engine/cursor"
	"github.com/dshills/modeline/internal/frame"
	"github.com/dshills/modeline/internal/input"
	"github.com/dshills/modeline/internal/input/key"
	"github.com/dshills/modeline/internal/input/macro"
	"github.com/dshills/modeline/internal/input/mode"
)

// MsgReadOnly is shown when typing into a buffer that rejects edits.
const MsgReadOnly = "Buffer is read-only"

// Logger receives debug output.
type Logger interface {
	Debug(msg string, args ...any)
}

// Editor ties the macro engine to the frame manager.
type Editor struct {
	macros *macro.Engine
	frames *frame.Manager
	logger Logger

	tabSpaces bool
	tabWidth  int
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets a debug logger.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTabs makes Tab insert width spaces instead of a tab character.
func WithTabs(insertSpaces bool, width int) Option {
	return func(e *Editor) {
		e.tabSpaces = insertSpaces
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// New creates an editor.
func New(macros *macro.Engine, frames *frame.Manager, opts ...Option) *Editor {
	e := &Editor{
		macros:   macros,
		frames:   frames,
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTabs changes how Tab is inserted. See WithTabs.
func (e *Editor) SetTabs(insertSpaces bool, width int) {
	WithTabs(insertSpaces, width)(e)
}

// Mode returns the current input mode.
func (e *Editor) Mode() mode.Mode {
	return e.macros.Mode()
}

// Macros returns the macro engine.
func (e *Editor) Macros() *macro.Engine {
	return e.macros
}

// Frames returns the frame manager.
func (e *Editor) Frames() *frame.Manager {
	return e.frames
}

// Resolver returns the input resolver.
func (e *Editor) Resolver() *input.Resolver {
	return e.macros.Resolver()
}

// reachFor returns the cursor reach allowed in m.
func reachFor(m mode.Mode) cursor.Reach {
	if mode.IsInsert(m) {
		return cursor.ReachPastEnd
	}
	return cursor.ReachLastChar
}

// HandleKey applies one key event and returns the actions for the host.
// If results need a frame and none is active, the remaining actions are
// still returned together with frame.ErrNoActiveFrame.
func (e *Editor) HandleKey(ev key.Event) ([]action.Action, error) {
	current := e.macros.Mode()
	results := e.macros.Process(ev)

	f, frameErr := e.frames.Active()
	var missing bool
	var readOnly bool
	var actions []action.Action

	for _, res := range results {
		switch r := res.(type) {
		case input.ModeChange:
			e.debug("mode: %s -> %s", current.Name(), r.Mode.Name())
			if f != nil && mode.IsInsert(current) && !mode.IsInsert(r.Mode) {
				f.Cursor.Readjust(f.Buffer, cursor.ReachLastChar)
			}
			current = r.Mode

		case input.CursorIntent:
			if f == nil {
				missing = true
				continue
			}
			r.Motion.Apply(&f.Cursor, f.Buffer, reachFor(current))

		case input.Insert:
			if f == nil {
				missing = true
				continue
			}
			if err := e.insert(f, r.Event); errors.Is(err, buffer.ErrReadOnly) {
				readOnly = true
			} else if err != nil {
				e.debug("insert %s: %v", r.Event, err)
			}

		case input.ActionResult:
			actions = append(actions, r.Action)
		}
	}

	if readOnly {
		actions = append(actions, action.Notify(action.LevelWarn, MsgReadOnly, action.ShortNotice))
	}
	if missing {
		return actions, frameErr
	}
	return actions, nil
}

func (e *Editor) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
