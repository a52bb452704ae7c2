package macro

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/input"
	"github.com/dshills/modeline/internal/input/key"
	"github.com/dshills/modeline/internal/input/mode"
)

// Errors reported as notifications.
var (
	// ErrInvalidMacroLabel indicates a label key that is not a plain character.
	ErrInvalidMacroLabel = errors.New("invalid macro label")

	// ErrIncompleteMacro indicates a replay of a label with no finished recording.
	ErrIncompleteMacro = errors.New("incomplete macro")
)

// LastReplayed is the replay label that repeats the previous replay.
const LastReplayed = '@'

// Logger receives debug output.
type Logger interface {
	Debug(msg string, args ...any)
}

type span struct {
	start  int
	end    int
	closed bool
}

// Info describes a registered macro.
type Info struct {
	Label  rune
	Start  int
	End    int
	Closed bool
	Length int
}

// Engine records and replays macros in front of a resolver.
type Engine struct {
	resolver *input.Resolver
	log      Log
	macros   map[rune]span
	state    State
	last     rune
	limit    int
	logger   Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogLimit bounds the master log. Once it holds more than n events,
// events older than every macro start are discarded. Zero means no limit.
func WithLogLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithLogger sets a debug logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine in front of resolver.
func New(resolver *input.Resolver, opts ...Option) *Engine {
	e := &Engine{
		resolver: resolver,
		macros:   make(map[rune]span),
		state:    Idle{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the resolver's current mode.
func (e *Engine) Mode() mode.Mode {
	return e.resolver.Mode()
}

// Resolver returns the wrapped resolver.
func (e *Engine) Resolver() *input.Resolver {
	return e.resolver
}

// State returns the current macro state.
func (e *Engine) State() State {
	return e.state
}

// Log returns the master log.
func (e *Engine) Log() *Log {
	return &e.log
}

// Process logs ev, runs it through the macro state machine and returns
// the results to apply.
func (e *Engine) Process(ev key.Event) []input.Result {
	idx := e.log.Append(ev)
	results := e.process(ev, idx)
	e.compact()
	return results
}

func (e *Engine) process(ev key.Event, idx int) []input.Result {
	if !mode.IsNormal(e.resolver.Mode()) {
		return e.resolver.Resolve(ev)
	}

	switch s := e.state.(type) {
	case Idle:
		switch {
		case ev.IsPlainRune('q'):
			e.state = AwaitingRecordLabel{}
			return nil
		case ev.IsPlainRune('@'):
			e.state = AwaitingReplayLabel{}
			return nil
		}
		return e.resolver.Resolve(ev)

	case AwaitingRecordLabel:
		e.state = Idle{}
		label, err := recordLabel(ev)
		if err != nil {
			return e.fail(err)
		}
		e.macros[label] = span{start: idx + 1}
		e.state = Recording{Label: label}
		e.debug("macro: recording @%c from %d", label, idx+1)
		return nil

	case Recording:
		if ev.IsPlainRune('q') {
			m := e.macros[s.Label]
			m.end = idx
			m.closed = true
			e.macros[s.Label] = m
			e.state = Idle{}
			e.debug("macro: closed @%c [%d, %d)", s.Label, m.start, m.end)
			return nil
		}
		return e.resolver.Resolve(ev)

	case AwaitingReplayLabel:
		e.state = Idle{}
		return e.replay(ev)
	}
	return nil
}

func recordLabel(ev key.Event) (rune, error) {
	if !isLabel(ev) || ev.Rune == LastReplayed {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMacroLabel, ev)
	}
	return ev.Rune, nil
}

func isLabel(ev key.Event) bool {
	return ev.Key == key.KeyRune && ev.Rune != 0 && !ev.IsModified()
}

func (e *Engine) replay(ev key.Event) []input.Result {
	if !isLabel(ev) {
		return e.fail(fmt.Errorf("%w: %s", ErrInvalidMacroLabel, ev))
	}
	label := ev.Rune
	if label == LastReplayed {
		if e.last == 0 {
			return e.fail(fmt.Errorf("%w: no previous replay", ErrIncompleteMacro))
		}
		label = e.last
	}

	m, ok := e.macros[label]
	if !ok {
		return e.fail(fmt.Errorf("%w: @%c is not recorded", ErrIncompleteMacro, label))
	}
	// Unreachable through Process: "@" passes through while recording.
	if !m.closed {
		return e.fail(fmt.Errorf("%w: @%c is still recording", ErrIncompleteMacro, label))
	}

	events, err := e.log.Slice(m.start, m.end)
	if err != nil {
		return e.fail(fmt.Errorf("%w: @%c: %v", ErrIncompleteMacro, label, err))
	}

	e.last = label
	e.debug("macro: replaying @%c (%d keys)", label, len(events))

	var results []input.Result
	for _, rev := range events {
		results = append(results, e.resolver.Resolve(rev)...)
	}
	return results
}

func (e *Engine) fail(err error) []input.Result {
	e.debug("macro: %v", err)
	return input.Actions(action.Notify(action.LevelError, err.Error(), action.LongNotice))
}

// compact trims the log prefix no macro can reach.
func (e *Engine) compact() {
	if e.limit == 0 || e.log.Retained() <= e.limit {
		return
	}
	keep := e.log.Len()
	for _, m := range e.macros {
		if m.start < keep {
			keep = m.start
		}
	}
	if keep > e.log.Base() {
		e.debug("macro: discarding log [%d, %d)", e.log.Base(), keep)
		e.log.DiscardBefore(keep)
	}
}

// Macros returns the registered macros sorted by label.
func (e *Engine) Macros() []Info {
	out := make([]Info, 0, len(e.macros))
	for label, m := range e.macros {
		info := Info{Label: label, Start: m.start, Closed: m.closed}
		if m.closed {
			info.End = m.end
			info.Length = m.end - m.start
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

func (e *Engine) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
