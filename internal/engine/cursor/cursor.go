package cursor

import (
	"fmt"

	"github.com/dshills/modeline/internal/engine/buffer"
)

// Reach is the rightmost column a motion may land on.
type Reach uint8

const (
	// ReachLastChar keeps the cursor on the last character of a line.
	ReachLastChar Reach = iota
	// ReachPastEnd lets the cursor sit one position past the last character.
	ReachPastEnd
)

// String returns the reach name.
func (r Reach) String() string {
	if r == ReachPastEnd {
		return "past-end"
	}
	return "last-char"
}

// MaxColumn returns the largest column allowed on a line of length n.
func (r Reach) MaxColumn(n int) int {
	if r == ReachPastEnd {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// Cursor is a position in a line-structured buffer.
// The zero value is a cursor at the start of the buffer.
type Cursor struct {
	Line   int
	Column int

	remembered *int
}

// New creates a cursor at (line, col).
func New(line, col int) Cursor {
	return Cursor{Line: line, Column: col}
}

// Remembered returns the remembered column, if any.
func (c *Cursor) Remembered() (int, bool) {
	if c.remembered == nil {
		return 0, false
	}
	return *c.remembered, true
}

// String returns "line:col" with 1-based values.
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line+1, c.Column+1)
}

func (c *Cursor) forget() {
	c.remembered = nil
}

func (c *Cursor) remember(col int) {
	c.remembered = &col
}

// MoveLeft moves one column left.
func (c *Cursor) MoveLeft() {
	if c.Column > 0 {
		c.Column--
	}
	c.forget()
}

// MoveRight moves one column right if the line allows it.
func (c *Cursor) MoveRight(buf buffer.Reader, reach Reach) {
	limit := buf.LineLen(c.Line)
	if reach == ReachPastEnd {
		limit++
	}
	if c.Column+1 < limit {
		c.Column++
	}
	c.forget()
}

// MoveUp moves to the previous line. It does nothing on the first line.
func (c *Cursor) MoveUp(buf buffer.Reader, reach Reach) {
	if c.Line == 0 {
		return
	}
	c.vertical(buf, c.Line-1, reach)
}

// MoveDown moves to the next line. It does nothing on the last line.
func (c *Cursor) MoveDown(buf buffer.Reader, reach Reach) {
	if c.Line+1 >= buf.LineCount() {
		return
	}
	c.vertical(buf, c.Line+1, reach)
}

// vertical lands on target at the desired column, clamping and
// remembering it when the line is too short.
func (c *Cursor) vertical(buf buffer.Reader, target int, reach Reach) {
	desired := c.Column
	if c.remembered != nil {
		desired = *c.remembered
	}

	c.Line = target
	maxCol := reach.MaxColumn(buf.LineLen(target))
	if desired > maxCol {
		c.Column = maxCol
		c.remember(desired)
		return
	}
	c.Column = desired
	c.forget()
}

// Readjust clamps the cursor into the buffer after an edit.
// The remembered column is kept.
func (c *Cursor) Readjust(buf buffer.Reader, reach Reach) {
	if last := buf.LineCount() - 1; c.Line > last {
		c.Line = last
	}
	if c.Line < 0 {
		c.Line = 0
	}
	if maxCol := reach.MaxColumn(buf.LineLen(c.Line)); c.Column > maxCol {
		c.Column = maxCol
	}
	if c.Column < 0 {
		c.Column = 0
	}
}

// LineStart moves to column 0.
func (c *Cursor) LineStart() {
	c.Column = 0
	c.forget()
}

// LineEnd moves to the rightmost column the reach allows.
func (c *Cursor) LineEnd(buf buffer.Reader, reach Reach) {
	c.Column = reach.MaxColumn(buf.LineLen(c.Line))
	c.forget()
}

// ParagraphForward moves to the first empty line after the next run of
// text, or to the last character of the buffer.
func (c *Cursor) ParagraphForward(buf buffer.Reader) {
	last := buf.LineCount() - 1
	line := c.Line
	for line < last && buf.LineLen(line) == 0 {
		line++
	}
	for line < last && buf.LineLen(line) != 0 {
		line++
	}
	c.Line = line
	c.Column = 0
	if n := buf.LineLen(line); n > 0 {
		c.Column = n - 1
	}
	c.forget()
}

// ParagraphBackward moves to the first empty line before the previous run
// of text, or to the start of the buffer.
func (c *Cursor) ParagraphBackward(buf buffer.Reader) {
	line := c.Line
	for line > 0 && buf.LineLen(line) == 0 {
		line--
	}
	for line > 0 && buf.LineLen(line) != 0 {
		line--
	}
	c.Line = line
	c.Column = 0
	c.forget()
}

// GoTo moves to (line, col), clamped into the buffer.
func (c *Cursor) GoTo(buf buffer.Reader, line, col int, reach Reach) {
	c.Line = line
	c.Column = col
	c.forget()
	c.Readjust(buf, reach)
}
