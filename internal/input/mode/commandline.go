package mode

import (
	"errors"
	"math"
)

// MaxCommandLine is the maximum number of runes a command line holds.
const MaxCommandLine = math.MaxUint8

// ErrCommandLineFull is returned when inserting into a full command line.
var ErrCommandLineFull = errors.New("command line is full")

// CommandLine is the text typed in Command mode and the cursor within it.
type CommandLine struct {
	text   []rune
	cursor uint8
}

// NewCommandLine returns an empty command line.
func NewCommandLine() *CommandLine {
	return &CommandLine{text: make([]rune, 0, 32)}
}

// String returns the command text.
func (l *CommandLine) String() string {
	return string(l.text)
}

// Len returns the number of runes in the command line.
func (l *CommandLine) Len() int {
	return len(l.text)
}

// Cursor returns the cursor position in runes.
func (l *CommandLine) Cursor() int {
	return int(l.cursor)
}

// Insert inserts r at the cursor and advances it.
func (l *CommandLine) Insert(r rune) error {
	if len(l.text) >= MaxCommandLine {
		return ErrCommandLineFull
	}
	l.text = append(l.text, 0)
	copy(l.text[l.cursor+1:], l.text[l.cursor:])
	l.text[l.cursor] = r
	l.cursor++
	return nil
}

// Backspace deletes the rune before the cursor. It reports false when the
// cursor is already at the start.
func (l *CommandLine) Backspace() bool {
	if l.cursor == 0 {
		return false
	}
	l.text = append(l.text[:l.cursor-1], l.text[l.cursor:]...)
	l.cursor--
	return true
}

// MoveLeft moves the cursor one rune left.
func (l *CommandLine) MoveLeft() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (l *CommandLine) MoveRight() {
	if int(l.cursor) < len(l.text) {
		l.cursor++
	}
}
