package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modeline/internal/input/key"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewScreenTerminal wraps an existing screen, such as a simulation screen.
func NewScreenTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	var ts tcell.CursorStyle
	switch style {
	case CursorUnderline:
		ts = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		ts = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	default:
		ts = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(ts)
}

// PollEvent returns the next key or resize event. Events the editor has no
// use for are skipped.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := ConvertKey(e)
		if !ok {
			return Event{}
		}
		return Event{Type: EventKey, Key: k}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// legacyControl are keys the terminal also reports as Ctrl+letter.
var legacyControl = map[tcell.Key]bool{
	tcell.KeyEscape:    true,
	tcell.KeyEnter:     true,
	tcell.KeyTab:       true,
	tcell.KeyBackspace: true,
}

// ConvertKey maps a tcell key event to a key.Event.
//
// Ctrl+letter arrives as a dedicated tcell key and becomes the lower-case
// rune with ModCtrl. Shift is dropped from rune events because the rune
// already carries it.
func ConvertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods.Without(key.ModShift)), true
	}
	if sk, ok := specialKeys[k]; ok {
		if legacyControl[k] {
			mods = mods.Without(key.ModCtrl)
		}
		return key.NewSpecialEvent(sk, mods), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl).Without(key.ModShift)), true
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}

var colors = map[Color]tcell.Color{
	ColorRed:    tcell.ColorRed,
	ColorGreen:  tcell.ColorGreen,
	ColorYellow: tcell.ColorYellow,
	ColorBlue:   tcell.ColorBlue,
	ColorGray:   tcell.ColorGray,
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if c, ok := colors[s.Foreground]; ok {
		style = style.Foreground(c)
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}
