package cursor

import (
	"testing"

	"github.com/dshills/modeline/internal/engine/buffer"
)

func remembered(c Cursor) int {
	if col, ok := c.Remembered(); ok {
		return col
	}
	return -1
}

func TestMoveLeft(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want int
	}{
		{"middle", 3, 2},
		{"start", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, tt.col)
			c.remember(9)
			c.MoveLeft()
			if c.Column != tt.want {
				t.Errorf("Column = %d, want %d", c.Column, tt.want)
			}
			if _, ok := c.Remembered(); ok {
				t.Error("MoveLeft should clear the remembered column")
			}
		})
	}
}

func TestMoveRight(t *testing.T) {
	buf := buffer.FromString("hello\n")
	tests := []struct {
		name  string
		line  int
		col   int
		reach Reach
		want  int
	}{
		{"normal middle", 0, 2, ReachLastChar, 3},
		{"normal at last char", 0, 4, ReachLastChar, 4},
		{"insert at last char", 0, 4, ReachPastEnd, 5},
		{"insert past end", 0, 5, ReachPastEnd, 5},
		{"normal empty line", 1, 0, ReachLastChar, 0},
		{"insert empty line", 1, 0, ReachPastEnd, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.line, tt.col)
			c.remember(7)
			c.MoveRight(buf, tt.reach)
			if c.Column != tt.want {
				t.Errorf("Column = %d, want %d", c.Column, tt.want)
			}
			if _, ok := c.Remembered(); ok {
				t.Error("MoveRight should clear the remembered column")
			}
		})
	}
}

func TestVerticalBoundaries(t *testing.T) {
	buf := buffer.FromString("abc\nde")

	c := New(0, 2)
	c.MoveUp(buf, ReachLastChar)
	if c.Line != 0 || c.Column != 2 {
		t.Errorf("MoveUp on first line = %v, want unchanged 1:3", c)
	}

	c = New(1, 1)
	c.MoveDown(buf, ReachLastChar)
	if c.Line != 1 || c.Column != 1 {
		t.Errorf("MoveDown on last line = %v, want unchanged 2:2", c)
	}
}

func TestRememberedColumnRoundTrip(t *testing.T) {
	// Line lengths 5, 2, 6.
	buf := buffer.FromString("hello\nhi\nworld!")
	c := New(0, 4)

	c.MoveDown(buf, ReachLastChar)
	if c.Line != 1 || c.Column != 1 {
		t.Fatalf("after first MoveDown = (%d, %d), want (1, 1)", c.Line, c.Column)
	}
	if got := remembered(c); got != 4 {
		t.Fatalf("remembered = %d, want 4", got)
	}

	c.MoveDown(buf, ReachLastChar)
	if c.Line != 2 || c.Column != 4 {
		t.Fatalf("after second MoveDown = (%d, %d), want (2, 4)", c.Line, c.Column)
	}
	if got := remembered(c); got != -1 {
		t.Errorf("remembered = %d, want cleared", got)
	}
}

func TestMoveUpRemembers(t *testing.T) {
	buf := buffer.FromString("world!\nhi\nhello")
	c := New(2, 4)

	c.MoveUp(buf, ReachLastChar)
	if c.Column != 1 || remembered(c) != 4 {
		t.Fatalf("after MoveUp col=%d remembered=%d, want 1, 4", c.Column, remembered(c))
	}
	c.MoveUp(buf, ReachLastChar)
	if c.Line != 0 || c.Column != 4 || remembered(c) != -1 {
		t.Errorf("after second MoveUp = (%d, %d) remembered=%d, want (0, 4) cleared", c.Line, c.Column, remembered(c))
	}
}

func TestRememberedSurvivesSeveralShortLines(t *testing.T) {
	buf := buffer.FromString("abcdefgh\nab\n\nabc\nabcdefgh")
	c := New(0, 6)

	wantCols := []int{1, 0, 2, 6}
	for i, want := range wantCols {
		c.MoveDown(buf, ReachLastChar)
		if c.Column != want {
			t.Errorf("step %d: Column = %d, want %d", i, c.Column, want)
		}
	}
	if _, ok := c.Remembered(); ok {
		t.Error("remembered column should be consumed on the long line")
	}
}

func TestHorizontalMoveClearsRemembered(t *testing.T) {
	buf := buffer.FromString("hello\nhi\nworld!")
	c := New(0, 4)
	c.MoveDown(buf, ReachLastChar)
	c.MoveLeft()
	c.MoveDown(buf, ReachLastChar)
	if c.Column != 0 {
		t.Errorf("Column = %d, want 0", c.Column)
	}
}

func TestInsertReachClamp(t *testing.T) {
	buf := buffer.FromString("hello\nhi")
	c := New(0, 5)
	c.MoveDown(buf, ReachPastEnd)
	if c.Column != 2 || remembered(c) != 5 {
		t.Errorf("col=%d remembered=%d, want 2, 5", c.Column, remembered(c))
	}
}

func TestReadjust(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		line     int
		col      int
		reach    Reach
		wantLine int
		wantCol  int
	}{
		{"past end normal", "abc", 0, 3, ReachLastChar, 0, 2},
		{"past end insert", "abc", 0, 3, ReachPastEnd, 0, 3},
		{"shrunk line", "a", 0, 5, ReachPastEnd, 0, 1},
		{"empty line", "", 0, 4, ReachLastChar, 0, 0},
		{"line removed", "abc\nd", 4, 2, ReachLastChar, 1, 0},
		{"in range", "abc", 0, 1, ReachLastChar, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.line, tt.col)
			c.Readjust(buffer.FromString(tt.text), tt.reach)
			if c.Line != tt.wantLine || c.Column != tt.wantCol {
				t.Errorf("Readjust = (%d, %d), want (%d, %d)", c.Line, c.Column, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestLineStartEnd(t *testing.T) {
	buf := buffer.FromString("hello")
	c := New(0, 2)

	c.LineEnd(buf, ReachLastChar)
	if c.Column != 4 {
		t.Errorf("LineEnd normal = %d, want 4", c.Column)
	}
	c.LineEnd(buf, ReachPastEnd)
	if c.Column != 5 {
		t.Errorf("LineEnd insert = %d, want 5", c.Column)
	}
	c.LineStart()
	if c.Column != 0 {
		t.Errorf("LineStart = %d, want 0", c.Column)
	}
}

func TestParagraphMotions(t *testing.T) {
	buf := buffer.FromString("one\ntwo\n\n\nthree\nfour\n\nfive")

	tests := []struct {
		name     string
		motion   Motion
		line     int
		wantLine int
		wantCol  int
	}{
		{"forward from text", MotionParagraphForward, 0, 2, 0},
		{"forward from blank run", MotionParagraphForward, 2, 6, 0},
		{"forward to end", MotionParagraphForward, 6, 7, 3},
		{"backward from text", MotionParagraphBackward, 5, 3, 0},
		{"backward from blank", MotionParagraphBackward, 6, 3, 0},
		{"backward to start", MotionParagraphBackward, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.line, 0)
			tt.motion.Apply(&c, buf, ReachLastChar)
			if c.Line != tt.wantLine || c.Column != tt.wantCol {
				t.Errorf("%s = (%d, %d), want (%d, %d)", tt.motion, c.Line, c.Column, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestGoTo(t *testing.T) {
	buf := buffer.FromString("abc\nde")
	c := New(0, 0)
	c.GoTo(buf, 9, 9, ReachLastChar)
	if c.Line != 1 || c.Column != 1 {
		t.Errorf("GoTo = (%d, %d), want (1, 1)", c.Line, c.Column)
	}
}

func TestMotionString(t *testing.T) {
	if got := MotionParagraphForward.String(); got != "paragraph-forward" {
		t.Errorf("String() = %q", got)
	}
	if got := Motion(99).String(); got != "Motion(99)" {
		t.Errorf("String() = %q", got)
	}
}
