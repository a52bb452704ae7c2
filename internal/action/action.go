// Package action defines the side effects the editor core asks its host
// application to perform.
//
// The core only produces actions; it never interprets them. The host's
// dispatcher decides what quitting, writing a buffer, or showing a
// notification means.
package action

import (
	"fmt"
	"time"
)

// Action is an outbound request for a side effect.
// The set of actions is closed; switch on the concrete type.
type Action interface {
	isAction()
	fmt.Stringer
}

// Quit asks the host to exit.
type Quit struct{}

// WriteActiveBuffer asks the host to persist the active frame's buffer.
type WriteActiveBuffer struct{}

// CloseActiveBuffer asks the host to close the active frame.
type CloseActiveBuffer struct{}

// NextBuffer asks the host to focus the next frame.
type NextBuffer struct{}

// Resize reports a new terminal size.
type Resize struct {
	Width  int
	Height int
}

// AttachNotification asks the host to show a transient message.
type AttachNotification struct {
	Notification Notification

	// Duration is how long the message stays visible.
	Duration time.Duration
}

func (Quit) isAction()               {}
func (WriteActiveBuffer) isAction()  {}
func (CloseActiveBuffer) isAction()  {}
func (NextBuffer) isAction()         {}
func (Resize) isAction()             {}
func (AttachNotification) isAction() {}

func (Quit) String() string              { return "Quit" }
func (WriteActiveBuffer) String() string { return "WriteActiveBuffer" }
func (CloseActiveBuffer) String() string { return "CloseActiveBuffer" }
func (NextBuffer) String() string        { return "NextBuffer" }

func (a Resize) String() string {
	return fmt.Sprintf("Resize(%d, %d)", a.Width, a.Height)
}

func (a AttachNotification) String() string {
	return fmt.Sprintf("AttachNotification(%s, %s)", a.Notification, a.Duration)
}

// Level is the severity of a notification.
type Level uint8

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
	LevelSuccess
	LevelFail
)

// String returns a lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	case LevelFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to a Level. Unknown names are LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "success":
		return LevelSuccess
	case "fail":
		return LevelFail
	default:
		return LevelInfo
	}
}

// Notification is a short message for the status area.
type Notification struct {
	Level   Level
	Message string
}

// String returns "level: message".
func (n Notification) String() string {
	return n.Level.String() + ": " + n.Message
}

// Default display durations.
const (
	ShortNotice = 2 * time.Second
	LongNotice  = 8 * time.Second
)

// Notify builds an AttachNotification action.
func Notify(level Level, message string, d time.Duration) AttachNotification {
	return AttachNotification{
		Notification: Notification{Level: level, Message: message},
		Duration:     d,
	}
}
