package mode

import "fmt"

// Position is a (line, column) position in a buffer.
type Position struct {
	Line   int
	Column int
}

// Selection is the region held by Visual mode.
type Selection interface {
	fmt.Stringer
	isSelection()
}

// LineSelection selects whole lines From..To inclusive.
type LineSelection struct {
	From int
	To   int
}

func (s LineSelection) String() string { return fmt.Sprintf("lines %d-%d", s.From+1, s.To+1) }
func (LineSelection) isSelection()     {}

// CharSelection selects characters between two positions.
type CharSelection struct {
	From Position
	To   Position
}

func (s CharSelection) String() string {
	return fmt.Sprintf("chars %d:%d-%d:%d", s.From.Line+1, s.From.Column+1, s.To.Line+1, s.To.Column+1)
}
func (CharSelection) isSelection() {}

// BlockSelection selects the rectangle spanned by two positions.
type BlockSelection struct {
	From Position
	To   Position
}

func (s BlockSelection) String() string {
	return fmt.Sprintf("block %d:%d-%d:%d", s.From.Line+1, s.From.Column+1, s.To.Line+1, s.To.Column+1)
}
func (BlockSelection) isSelection() {}
