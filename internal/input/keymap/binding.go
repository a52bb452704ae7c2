package keymap

import "strings"

// Binding names.
const (
	CursorMoveLeft          = "cursor.moveLeft"
	CursorMoveRight         = "cursor.moveRight"
	CursorMoveUp            = "cursor.moveUp"
	CursorMoveDown          = "cursor.moveDown"
	CursorMoveLineStart     = "cursor.moveLineStart"
	CursorMoveLineEnd       = "cursor.moveLineEnd"
	CursorParagraphForward  = "cursor.paragraphForward"
	CursorParagraphBackward = "cursor.paragraphBackward"

	ModeInsert  = "mode.insert"
	ModeAppend  = "mode.append"
	ModeCommand = "mode.command"
	ModeVisual  = "mode.visual"

	BufferWrite    = "buffer.write"
	EditorQuitHint = "editor.quitHint"
)

// CommandPrefix marks a binding that runs command-line text.
const CommandPrefix = ":"

var known = map[string]string{
	CursorMoveLeft:          "Move left",
	CursorMoveRight:         "Move right",
	CursorMoveUp:            "Move up",
	CursorMoveDown:          "Move down",
	CursorMoveLineStart:     "Move to line start",
	CursorMoveLineEnd:       "Move to line end",
	CursorParagraphForward:  "Move to next paragraph",
	CursorParagraphBackward: "Move to previous paragraph",
	ModeInsert:              "Insert before cursor",
	ModeAppend:              "Insert after cursor",
	ModeCommand:             "Enter command line",
	ModeVisual:              "Start visual selection",
	BufferWrite:             "Write buffer",
	EditorQuitHint:          "Show how to quit",
}

// Binding is a key bound to a named behavior.
type Binding struct {
	// Keys is the key in Vim notation (e.g. "h", "<C-s>").
	Keys string

	// Action is the binding name or ":command text".
	Action string

	// Description documents the binding for display.
	Description string
}

// IsKnown reports whether name is a valid binding name.
func IsKnown(name string) bool {
	if IsCommand(name) {
		return len(name) > len(CommandPrefix)
	}
	_, ok := known[name]
	return ok
}

// IsCommand reports whether name runs command-line text.
func IsCommand(name string) bool {
	return strings.HasPrefix(name, CommandPrefix)
}

// CommandText returns the command-line text of a command binding.
func CommandText(name string) string {
	return strings.TrimPrefix(name, CommandPrefix)
}

// Describe returns the description of a binding name.
func Describe(name string) string {
	if IsCommand(name) {
		return "Run " + name
	}
	return known[name]
}
