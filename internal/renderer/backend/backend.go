// Package backend abstracts the terminal the editor draws on.
package backend

import "github.com/dshills/modeline/internal/input/key"

// Backend is a character-cell display with a keyboard.
type Backend interface {
	// Init takes over the terminal.
	Init() error

	// Shutdown restores the terminal. PollEvent then returns EventClosed.
	Shutdown()

	// Size returns the screen size in cells.
	Size() (width, height int)

	// SetContent places r at (x, y). Wide runes occupy the next cell too.
	SetContent(x, y int, r rune, style Style)

	Clear()
	Show()
	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event
}

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// Color is one of a small fixed palette.
type Color int

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorGray
)

// Style is the look of a cell.
type Style struct {
	Foreground Color
	Bold       bool
	Reverse    bool
}

// StyleDefault is the terminal's default look.
var StyleDefault = Style{}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}
