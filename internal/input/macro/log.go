package macro

import (
	"errors"
	"fmt"

	"github.com/dshills/modeline/internal/input/key"
)

// ErrLogRange is returned for a range outside the retained log.
var ErrLogRange = errors.New("log range out of bounds")

// Log is the append-only master log of key events. Indices are absolute:
// compaction drops old events but never renumbers the rest.
type Log struct {
	events []key.Event
	base   int
}

// Append adds ev and returns its index.
func (l *Log) Append(ev key.Event) int {
	l.events = append(l.events, ev)
	return l.base + len(l.events) - 1
}

// Len returns the index the next event will get.
func (l *Log) Len() int {
	return l.base + len(l.events)
}

// Base returns the index of the oldest retained event.
func (l *Log) Base() int {
	return l.base
}

// Retained returns the number of events held in memory.
func (l *Log) Retained() int {
	return len(l.events)
}

// Event returns the event at index i.
func (l *Log) Event(i int) (key.Event, bool) {
	if i < l.base || i >= l.Len() {
		return key.Event{}, false
	}
	return l.events[i-l.base], true
}

// Slice returns a copy of the events in [start, end).
func (l *Log) Slice(start, end int) ([]key.Event, error) {
	if start < l.base || end > l.Len() || end < start {
		return nil, fmt.Errorf("%w: [%d, %d) with log [%d, %d)", ErrLogRange, start, end, l.base, l.Len())
	}
	out := make([]key.Event, end-start)
	copy(out, l.events[start-l.base:end-l.base])
	return out, nil
}

// DiscardBefore drops every event with an index below i.
func (l *Log) DiscardBefore(i int) {
	if i <= l.base {
		return
	}
	if i > l.Len() {
		i = l.Len()
	}
	n := i - l.base
	l.events = append([]key.Event(nil), l.events[n:]...)
	l.base = i
}
