package mode

import (
	"errors"
	"strings"
	"testing"
)

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
		style   CursorStyle
	}{
		{Normal{}, ModeNormal, "NORMAL", CursorBlock},
		{Insert{EnteredFromEnd: true}, ModeInsert, "INSERT", CursorBar},
		{NewVisual(), ModeVisual, "VISUAL LINE", CursorBlock},
		{Visual{Selection: CharSelection{}}, ModeVisual, "VISUAL", CursorBlock},
		{Visual{Selection: BlockSelection{}}, ModeVisual, "VISUAL BLOCK", CursorBlock},
		{NewCommand(), ModeCommand, "COMMAND", CursorUnderline},
	}
	for _, tt := range tests {
		if got := tt.mode.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.mode.DisplayName(); got != tt.display {
			t.Errorf("DisplayName() = %q, want %q", got, tt.display)
		}
		if got := tt.mode.CursorStyle(); got != tt.style {
			t.Errorf("%s CursorStyle() = %v, want %v", tt.name, got, tt.style)
		}
	}
}

func TestDefaultSelection(t *testing.T) {
	v := NewVisual()
	sel, ok := v.Selection.(LineSelection)
	if !ok || sel != (LineSelection{}) {
		t.Errorf("default selection = %#v, want LineSelection{0, 0}", v.Selection)
	}
}

func TestPredicates(t *testing.T) {
	if !IsNormal(Normal{}) || IsNormal(Insert{}) {
		t.Error("IsNormal mismatch")
	}
	if !IsInsert(Insert{}) || IsInsert(NewCommand()) {
		t.Error("IsInsert mismatch")
	}
}

func TestCommandLineEditing(t *testing.T) {
	l := NewCommandLine()
	for _, r := range "wq" {
		if err := l.Insert(r); err != nil {
			t.Fatalf("Insert(%q) error = %v", r, err)
		}
	}
	l.MoveLeft()
	if err := l.Insert('x'); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if got := l.String(); got != "wxq" {
		t.Errorf("String() = %q, want %q", got, "wxq")
	}
	if l.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", l.Cursor())
	}

	if !l.Backspace() {
		t.Fatal("Backspace() = false, want true")
	}
	if got := l.String(); got != "wq" {
		t.Errorf("after Backspace String() = %q, want %q", got, "wq")
	}

	l.MoveRight()
	l.MoveRight()
	if l.Cursor() != 2 {
		t.Errorf("MoveRight past end: Cursor() = %d, want 2", l.Cursor())
	}

	l.MoveLeft()
	l.MoveLeft()
	l.MoveLeft()
	if l.Cursor() != 0 {
		t.Errorf("MoveLeft past start: Cursor() = %d, want 0", l.Cursor())
	}
	if l.Backspace() {
		t.Error("Backspace() at cursor 0 = true, want false")
	}
}

func TestCommandLineFull(t *testing.T) {
	l := NewCommandLine()
	for i := 0; i < MaxCommandLine; i++ {
		if err := l.Insert('a'); err != nil {
			t.Fatalf("Insert #%d error = %v", i, err)
		}
	}
	if err := l.Insert('b'); !errors.Is(err, ErrCommandLineFull) {
		t.Errorf("Insert into full line error = %v, want ErrCommandLineFull", err)
	}
	if l.String() != strings.Repeat("a", MaxCommandLine) {
		t.Error("full command line content changed")
	}
	if l.Cursor() != MaxCommandLine {
		t.Errorf("Cursor() = %d, want %d", l.Cursor(), MaxCommandLine)
	}
}
