package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modeline/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   key.Event
		wantOK bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), key.NewRuneEvent('j', key.ModNone), true},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), key.NewRuneEvent('A', key.ModNone), true},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.NewRuneEvent('x', key.ModAlt), true},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), key.NewRuneEvent('s', key.ModCtrl), true},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), key.NewRuneEvent('c', key.ModCtrl), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone), true},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone), true},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyUp, key.ModShift), true},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyF5, key.ModNone), true},
		{"unsupported", tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone), key.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertKey(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("ConvertKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ConvertKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertEventResize(t *testing.T) {
	got := convertEvent(tcell.NewEventResize(80, 24))
	if got.Type != EventResize || got.Width != 80 || got.Height != 24 {
		t.Errorf("convertEvent(resize) = %+v", got)
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewScreenTerminal(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(20, 4)
	return term, screen
}

func TestTerminalDraw(t *testing.T) {
	term, screen := newSimTerminal(t)

	term.SetContent(0, 0, 'h', StyleDefault)
	term.SetContent(1, 0, 'i', Style{Foreground: ColorRed, Bold: true})
	term.ShowCursor(1, 0)
	term.Show()

	cells, w, h := screen.GetContents()
	if w != 20 || h != 4 {
		t.Fatalf("size = %dx%d, want 20x4", w, h)
	}
	if got := string(cells[0].Runes) + string(cells[1].Runes); got != "hi" {
		t.Errorf("row 0 = %q, want hi", got)
	}
	fg, _, attrs := cells[1].Style.Decompose()
	if fg != tcell.ColorRed || attrs&tcell.AttrBold == 0 {
		t.Errorf("cell style = %v %v, want red bold", fg, attrs)
	}
	if x, y, visible := screen.GetCursor(); x != 1 || y != 0 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (1, 0, true)", x, y, visible)
	}
}

func TestTerminalPollKey(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	want := []key.Event{
		key.NewRuneEvent('q', key.ModNone),
		key.NewRuneEvent('s', key.ModCtrl),
	}
	for i, w := range want {
		ev := term.PollEvent()
		for ev.Type == EventResize {
			ev = term.PollEvent()
		}
		if ev.Type != EventKey {
			t.Fatalf("event %d type = %v, want key", i, ev.Type)
		}
		if ev.Key != w {
			t.Errorf("event %d = %v, want %v", i, ev.Key, w)
		}
	}
}
