package mode

// Mode names.
const (
	ModeNormal  = "normal"
	ModeInsert  = "insert"
	ModeVisual  = "visual"
	ModeCommand = "command"
)

// Mode is an editor input mode.
type Mode interface {
	// Name returns the mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	isMode()
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Normal is the navigation mode.
type Normal struct{}

func (Normal) Name() string             { return ModeNormal }
func (Normal) DisplayName() string      { return "NORMAL" }
func (Normal) CursorStyle() CursorStyle { return CursorBlock }
func (Normal) isMode()                  {}

// Insert is the text entry mode.
type Insert struct {
	// EnteredFromEnd is set when the mode was entered by appending,
	// which advanced the cursor one column on entry.
	EnteredFromEnd bool
}

func (Insert) Name() string             { return ModeInsert }
func (Insert) DisplayName() string      { return "INSERT" }
func (Insert) CursorStyle() CursorStyle { return CursorBar }
func (Insert) isMode()                  {}

// Visual is the selection mode.
type Visual struct {
	Selection Selection
}

// NewVisual returns Visual mode with the default selection.
func NewVisual() Visual {
	return Visual{Selection: LineSelection{}}
}

func (Visual) Name() string { return ModeVisual }

func (v Visual) DisplayName() string {
	switch v.Selection.(type) {
	case LineSelection:
		return "VISUAL LINE"
	case BlockSelection:
		return "VISUAL BLOCK"
	default:
		return "VISUAL"
	}
}

func (Visual) CursorStyle() CursorStyle { return CursorBlock }
func (Visual) isMode()                  {}

// Command is the command-line mode.
type Command struct {
	Line *CommandLine
}

// NewCommand returns Command mode with an empty command line.
func NewCommand() Command {
	return Command{Line: NewCommandLine()}
}

func (Command) Name() string             { return ModeCommand }
func (Command) DisplayName() string      { return "COMMAND" }
func (Command) CursorStyle() CursorStyle { return CursorUnderline }
func (Command) isMode()                  {}

// IsNormal reports whether m is Normal mode.
func IsNormal(m Mode) bool {
	_, ok := m.(Normal)
	return ok
}

// IsInsert reports whether m is Insert mode.
func IsInsert(m Mode) bool {
	_, ok := m.(Insert)
	return ok
}
