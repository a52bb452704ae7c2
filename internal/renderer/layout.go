package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/modeline/internal/engine/buffer"
)

// CellWidth returns how many cells r occupies when drawn at display
// column x. Tabs stretch to the next tab stop; zero-width runes take a
// cell of their own.
func CellWidth(r rune, x, tabWidth int) int {
	if r == '\t' {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - x%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// DisplayColumn returns the display column of character col on line.
func DisplayColumn(buf buffer.Reader, line, col, tabWidth int) int {
	x := 0
	n := min(col, buf.LineLen(line))
	for i := 0; i < n; i++ {
		r, _ := buf.CharAt(line, i)
		x += CellWidth(r, x, tabWidth)
	}
	return x
}

// Scroll returns the offset that keeps pos inside a window of size cells,
// moving offset as little as possible.
func Scroll(offset, pos, size int) int {
	if size <= 0 {
		return pos
	}
	if pos < offset {
		return pos
	}
	if pos >= offset+size {
		return pos - size + 1
	}
	return offset
}

// StatusLine lays out left and right within width cells. The left part is
// truncated first.
func StatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.Truncate(right, width, "")
	}
	left = runewidth.Truncate(left, width-rw-1, "…")
	return runewidth.FillRight(left, width-rw) + right
}
