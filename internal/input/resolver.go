package input

import (
	"unicode"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/engine/cursor"
	"github.com/dshills/modeline/internal/input/command"
	"github.com/dshills/modeline/internal/input/key"
	"github.com/dshills/modeline/internal/input/keymap"
	"github.com/dshills/modeline/internal/input/mode"
)

// Notification messages produced by the resolver.
const (
	MsgSaved        = "Saved buffer"
	MsgQuitHint     = "Press ':q' in normal mode to quit"
	MsgInvalidInput = "Invalid input"
	MsgCommandFull  = "Command line is full"
)

// Resolver interprets key events according to the current mode.
type Resolver struct {
	mode     mode.Mode
	registry *command.Registry
	keymap   *keymap.Keymap
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithKeymap sets the Normal-mode keymap.
func WithKeymap(km *keymap.Keymap) Option {
	return func(r *Resolver) {
		if km != nil {
			r.keymap = km
		}
	}
}

// WithMode sets the initial mode.
func WithMode(m mode.Mode) Option {
	return func(r *Resolver) {
		if m != nil {
			r.mode = m
		}
	}
}

// NewResolver creates a resolver in Normal mode with the default keymap.
// A nil registry is replaced by an empty one.
func NewResolver(registry *command.Registry, opts ...Option) *Resolver {
	if registry == nil {
		registry = command.NewRegistry()
	}
	r := &Resolver{
		mode:     mode.Normal{},
		registry: registry,
		keymap:   keymap.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the current mode.
func (r *Resolver) Mode() mode.Mode {
	return r.mode
}

// Registry returns the command registry.
func (r *Resolver) Registry() *command.Registry {
	return r.registry
}

// Keymap returns the Normal-mode keymap.
func (r *Resolver) Keymap() *keymap.Keymap {
	return r.keymap
}

// SetKeymap replaces the Normal-mode keymap.
func (r *Resolver) SetKeymap(km *keymap.Keymap) {
	if km != nil {
		r.keymap = km
	}
}

// Resolve interprets ev in the current mode and returns its results in
// the order they must be applied.
func (r *Resolver) Resolve(ev key.Event) []Result {
	switch m := r.mode.(type) {
	case mode.Normal:
		return r.resolveNormal(ev)
	case mode.Insert:
		return r.resolveInsert(m, ev)
	case mode.Visual:
		return r.resolveVisual(ev)
	case mode.Command:
		return r.resolveCommand(m, ev)
	}
	return nil
}

func (r *Resolver) switchTo(m mode.Mode) Result {
	r.mode = m
	return ModeChange{Mode: m}
}

func (r *Resolver) resolveNormal(ev key.Event) []Result {
	name, ok := r.keymap.Lookup(ev)
	if !ok {
		return nil
	}

	if keymap.IsCommand(name) {
		return Actions(r.registry.Execute(keymap.CommandText(name))...)
	}

	switch name {
	case keymap.CursorMoveLeft:
		return motion(cursor.MotionLeft)
	case keymap.CursorMoveRight:
		return motion(cursor.MotionRight)
	case keymap.CursorMoveUp:
		return motion(cursor.MotionUp)
	case keymap.CursorMoveDown:
		return motion(cursor.MotionDown)
	case keymap.CursorMoveLineStart:
		return motion(cursor.MotionLineStart)
	case keymap.CursorMoveLineEnd:
		return motion(cursor.MotionLineEnd)
	case keymap.CursorParagraphForward:
		return motion(cursor.MotionParagraphForward)
	case keymap.CursorParagraphBackward:
		return motion(cursor.MotionParagraphBackward)

	case keymap.ModeInsert:
		return []Result{r.switchTo(mode.Insert{})}
	case keymap.ModeAppend:
		return []Result{
			r.switchTo(mode.Insert{EnteredFromEnd: true}),
			CursorIntent{Motion: cursor.MotionRight},
		}
	case keymap.ModeCommand:
		return []Result{r.switchTo(mode.NewCommand())}
	case keymap.ModeVisual:
		return []Result{r.switchTo(mode.NewVisual())}

	case keymap.BufferWrite:
		return Actions(
			action.WriteActiveBuffer{},
			action.Notify(action.LevelInfo, MsgSaved, action.ShortNotice),
		)
	case keymap.EditorQuitHint:
		return Actions(action.Notify(action.LevelInfo, MsgQuitHint, action.ShortNotice))
	}
	return nil
}

func motion(m cursor.Motion) []Result {
	return []Result{CursorIntent{Motion: m}}
}

func (r *Resolver) resolveInsert(m mode.Insert, ev key.Event) []Result {
	if !ev.IsEscape() {
		return []Result{Insert{Event: ev}}
	}
	if m.EnteredFromEnd {
		return []Result{
			CursorIntent{Motion: cursor.MotionLeft},
			r.switchTo(mode.Normal{}),
		}
	}
	return []Result{r.switchTo(mode.Normal{})}
}

func (r *Resolver) resolveVisual(ev key.Event) []Result {
	if ev.IsEscape() {
		return []Result{r.switchTo(mode.Normal{})}
	}
	return nil
}

func (r *Resolver) resolveCommand(m mode.Command, ev key.Event) []Result {
	line := m.Line

	switch {
	case ev.IsEscape(), ev.IsCtrl('c'):
		return []Result{r.switchTo(mode.Normal{})}

	case ev.IsEnter():
		results := Actions(r.registry.Execute(line.String())...)
		return append(results, r.switchTo(mode.Normal{}))

	case ev.IsBackspace():
		if !line.Backspace() {
			return []Result{r.switchTo(mode.Normal{})}
		}
		return nil

	case ev.Key == key.KeyLeft && ev.Modifiers == key.ModNone:
		line.MoveLeft()
		return nil

	case ev.Key == key.KeyRight && ev.Modifiers == key.ModNone:
		line.MoveRight()
		return nil

	case ev.IsRune() && !ev.IsModified() && unicode.IsPrint(ev.Rune):
		if err := line.Insert(ev.Rune); err != nil {
			return Actions(action.Notify(action.LevelWarn, MsgCommandFull, action.ShortNotice))
		}
		return nil
	}

	return Actions(InvalidCommandInput())
}

// InvalidCommandInput returns the notification for a key Command mode
// cannot accept.
func InvalidCommandInput() action.AttachNotification {
	return action.Notify(action.LevelError, MsgInvalidInput, action.LongNotice)
}
