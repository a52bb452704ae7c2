package buffer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lines is a Buffer that stores one rune slice per line.
// The zero value is not usable; construct with New, FromString or FromReader.
type Lines struct {
	lines [][]rune
}

// New creates an empty buffer with a single empty line.
func New() *Lines {
	return &Lines{lines: [][]rune{{}}}
}

// FromString creates a buffer from text. "\r\n" line endings are
// normalized to "\n".
func FromString(s string) *Lines {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Lines{lines: lines}
}

// FromReader reads all of r into a new buffer.
func FromReader(r io.Reader) (*Lines, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, bufio.NewReader(r)); err != nil {
		return nil, fmt.Errorf("reading buffer content: %w", err)
	}
	return FromString(sb.String()), nil
}

// LineCount returns the number of lines.
func (b *Lines) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of a line in characters.
func (b *Lines) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// CharAt returns the character at (line, col).
func (b *Lines) CharAt(line, col int) (rune, bool) {
	if line < 0 || line >= len(b.lines) || col < 0 || col >= len(b.lines[line]) {
		return 0, false
	}
	return b.lines[line][col], true
}

// LineStart returns the character offset of a line's first character.
// Lines past the end clamp to the length of the text.
func (b *Lines) LineStart(line int) int {
	if line > len(b.lines) {
		line = len(b.lines)
	}
	offset := 0
	for i := 0; i < line; i++ {
		offset += len(b.lines[i]) + 1
	}
	return offset
}

// Len returns the total number of characters, counting line separators.
func (b *Lines) Len() int {
	return b.LineStart(len(b.lines)) - 1
}

// Text returns the buffer content.
func (b *Lines) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// LineText returns the text of a single line.
func (b *Lines) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// position converts a character offset to (line, col).
func (b *Lines) position(offset int) (int, int, error) {
	orig := offset
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, orig)
	}
	for i, l := range b.lines {
		if offset <= len(l) {
			return i, offset, nil
		}
		offset -= len(l) + 1
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, orig)
}

// InsertChar inserts r at offset. '\n' splits the line at that point.
func (b *Lines) InsertChar(offset int, r rune) error {
	line, col, err := b.position(offset)
	if err != nil {
		return err
	}

	cur := b.lines[line]
	if r == '\n' {
		head := append([]rune(nil), cur[:col]...)
		tail := append([]rune(nil), cur[col:]...)
		b.lines = append(b.lines[:line+1], b.lines[line:]...)
		b.lines[line] = head
		b.lines[line+1] = tail
		return nil
	}

	cur = append(cur, 0)
	copy(cur[col+1:], cur[col:])
	cur[col] = r
	b.lines[line] = cur
	return nil
}

// DeleteRange removes [start, end). Ranges may span line separators, which
// joins the affected lines.
func (b *Lines) DeleteRange(start, end int) error {
	if end < start {
		return fmt.Errorf("%w: [%d, %d)", ErrRangeInvalid, start, end)
	}
	if start == end {
		return nil
	}

	startLine, startCol, err := b.position(start)
	if err != nil {
		return err
	}
	endLine, endCol, err := b.position(end)
	if err != nil {
		return err
	}

	joined := append([]rune(nil), b.lines[startLine][:startCol]...)
	joined = append(joined, b.lines[endLine][endCol:]...)

	b.lines = append(b.lines[:startLine+1], b.lines[endLine+1:]...)
	b.lines[startLine] = joined
	return nil
}

var _ Buffer = (*Lines)(nil)
