package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrReadOnly indicates a write to a buffer that does not accept edits.
	ErrReadOnly = errors.New("buffer is read-only")
)

// Reader is read access to line-structured text.
type Reader interface {
	// LineCount returns the number of lines. It is never less than 1.
	LineCount() int

	// LineLen returns the number of characters on a line, excluding the
	// line terminator. Out-of-range lines have length 0.
	LineLen(line int) int

	// CharAt returns the character at (line, col).
	CharAt(line, col int) (rune, bool)

	// LineStart returns the character offset of the first character on a line.
	LineStart(line int) int
}

// Buffer is a writable text buffer.
type Buffer interface {
	Reader

	// InsertChar inserts r at a character offset. Inserting '\n' splits
	// the line.
	InsertChar(offset int, r rune) error

	// DeleteRange removes the characters in [start, end).
	DeleteRange(start, end int) error

	// Text returns the full content with '\n' line separators.
	Text() string
}

// Offset converts a (line, col) position to a character offset in r.
func Offset(r Reader, line, col int) int {
	return r.LineStart(line) + col
}
