package renderer

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/editor"
	"github.com/dshills/modeline/internal/frame"
	"github.com/dshills/modeline/internal/input/command"
	"github.com/dshills/modeline/internal/input/macro"
	"github.com/dshills/modeline/internal/input/mode"
	"github.com/dshills/modeline/internal/renderer/backend"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 4

// NoName labels a frame without a file.
const NoName = "[No Name]"

// NoResults is shown in place of command suggestions when nothing matches.
const NoResults = "No results"

// MaxNotices bounds how many notifications are kept at once.
const MaxNotices = 5

var (
	statusStyle = backend.Style{Reverse: true}
	fillerStyle = backend.Style{Foreground: backend.ColorGray}
	nameStyle   = backend.Style{Foreground: backend.ColorBlue}
	descStyle   = backend.Style{Foreground: backend.ColorGray}
)

var levelStyles = map[action.Level]backend.Style{
	action.LevelWarn:    {Foreground: backend.ColorYellow},
	action.LevelError:   {Foreground: backend.ColorRed},
	action.LevelSuccess: {Foreground: backend.ColorGreen},
	action.LevelFail:    {Foreground: backend.ColorRed, Bold: true},
}

var cursorStyles = map[mode.CursorStyle]backend.CursorStyle{
	mode.CursorBlock:     backend.CursorBlock,
	mode.CursorBar:       backend.CursorBar,
	mode.CursorUnderline: backend.CursorUnderline,
}

type viewport struct {
	top, left int
}

type notice struct {
	n       action.Notification
	expires time.Time
}

// Renderer draws an editor onto a backend.
type Renderer struct {
	backend       backend.Backend
	width, height int
	tabWidth      int

	views   map[frame.ID]*viewport
	notices []notice
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTabWidth sets the tab stop distance.
func WithTabWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.tabWidth = n
		}
	}
}

// New creates a renderer sized to the backend's current screen.
func New(b backend.Backend, opts ...Option) *Renderer {
	w, h := b.Size()
	r := &Renderer{
		backend:  b,
		width:    w,
		height:   h,
		tabWidth: DefaultTabWidth,
		views:    make(map[frame.ID]*viewport),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the size the renderer lays out for.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Resize changes the layout size.
func (r *Renderer) Resize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
}

// SetTabWidth changes the tab stop distance.
func (r *Renderer) SetTabWidth(n int) {
	if n > 0 {
		r.tabWidth = n
	}
}

// Notify adds a notification that stays visible until its duration has
// passed. Only the newest MaxNotices are kept.
func (r *Renderer) Notify(a action.AttachNotification, now time.Time) {
	r.notices = append(r.notices, notice{n: a.Notification, expires: now.Add(a.Duration)})
	if extra := len(r.notices) - MaxNotices; extra > 0 {
		r.notices = append(r.notices[:0], r.notices[extra:]...)
	}
}

// Notifications returns the notifications visible at now, oldest first.
func (r *Renderer) Notifications(now time.Time) []action.Notification {
	live := r.notices[:0]
	for _, n := range r.notices {
		if now.Before(n.expires) {
			live = append(live, n)
		}
	}
	r.notices = live

	out := make([]action.Notification, len(live))
	for i, n := range live {
		out[i] = n.n
	}
	return out
}

// Notification returns the newest notification visible at now.
func (r *Renderer) Notification(now time.Time) (action.Notification, bool) {
	ns := r.Notifications(now)
	if len(ns) == 0 {
		return action.Notification{}, false
	}
	return ns[len(ns)-1], true
}

// Forget drops the scroll state of a closed frame.
func (r *Renderer) Forget(id frame.ID) {
	delete(r.views, id)
}

// Offsets returns the scroll offsets of a frame.
func (r *Renderer) Offsets(id frame.ID) (top, left int) {
	if vp, ok := r.views[id]; ok {
		return vp.top, vp.left
	}
	return 0, 0
}

// Draw renders ed as seen at now.
func (r *Renderer) Draw(ed *editor.Editor, now time.Time) {
	b := r.backend
	b.Clear()
	if r.height < 2 || r.width < 1 {
		b.HideCursor()
		b.Show()
		return
	}

	m := ed.Mode()
	rows := r.height - 2
	cx, cy := -1, -1

	f, err := ed.Frames().Active()
	if err == nil && rows > 0 {
		cx, cy = r.drawFrame(f, rows)
	}
	if err != nil {
		f = nil
	}
	r.drawStatus(m, ed.Macros(), f, r.height-2)

	bottom := r.height - 1
	if c, ok := m.(mode.Command); ok && c.Line != nil {
		line := c.Line.String()
		r.drawSuggestions(ed.Resolver().Registry().Search(command.Name(line)), rows)
		b.SetContent(0, bottom, ':', backend.StyleDefault)
		r.drawString(1, bottom, line, backend.StyleDefault)
		text := []rune(line)
		cx = 1 + runewidth.StringWidth(string(text[:c.Line.Cursor()]))
		cy = bottom
	} else {
		r.drawNotices(r.Notifications(now), rows)
	}

	if cx >= 0 && cx < r.width && cy >= 0 {
		b.SetCursorStyle(cursorStyles[m.CursorStyle()])
		b.ShowCursor(cx, cy)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// drawFrame draws the visible lines of f and returns the cursor's screen
// position.
func (r *Renderer) drawFrame(f *frame.Frame, rows int) (int, int) {
	vp, ok := r.views[f.ID]
	if !ok {
		vp = &viewport{}
		r.views[f.ID] = vp
	}

	buf := f.Buffer
	cur := f.Cursor
	cursorX := DisplayColumn(buf, cur.Line, cur.Column, r.tabWidth)
	vp.top = Scroll(vp.top, cur.Line, rows)
	vp.left = Scroll(vp.left, cursorX, r.width)

	for row := 0; row < rows; row++ {
		line := vp.top + row
		if line >= buf.LineCount() {
			r.backend.SetContent(0, row, '~', fillerStyle)
			continue
		}

		x := 0
		for col := 0; col < buf.LineLen(line); col++ {
			ch, _ := buf.CharAt(line, col)
			w := CellWidth(ch, x, r.tabWidth)
			sx := x - vp.left
			if sx >= r.width {
				break
			}
			if sx >= 0 {
				if ch == '\t' {
					for i := 0; i < w && sx+i < r.width; i++ {
						r.backend.SetContent(sx+i, row, ' ', backend.StyleDefault)
					}
				} else {
					r.backend.SetContent(sx, row, ch, backend.StyleDefault)
				}
			}
			x += w
		}
	}
	return cursorX - vp.left, cur.Line - vp.top
}

func (r *Renderer) drawStatus(m mode.Mode, macros *macro.Engine, f *frame.Frame, row int) {
	parts := []string{m.DisplayName()}
	if state := macros.State(); !isIdle(state) {
		parts = append(parts, state.String())
	}
	if labels := recordedLabels(macros.Macros()); labels != "" {
		parts = append(parts, labels)
	}

	right := ""
	if f != nil {
		name := f.Path
		if name == "" {
			name = NoName
		}
		parts = append(parts, name)
		right = f.Cursor.String() + " "
	}

	line := StatusLine(" "+strings.Join(parts, " | "), right, r.width)
	r.drawString(0, row, line, statusStyle)
}

func isIdle(s macro.State) bool {
	_, ok := s.(macro.Idle)
	return ok
}

// recordedLabels lists the finished macros as "@ab".
func recordedLabels(infos []macro.Info) string {
	var sb strings.Builder
	for _, info := range infos {
		if info.Closed {
			sb.WriteRune(info.Label)
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return "@" + sb.String()
}

// drawSuggestions lists matching commands in the rows just above the
// status line, or NoResults when nothing matches.
func (r *Renderer) drawSuggestions(suggestions []command.Suggestion, rows int) {
	if rows <= 0 {
		return
	}
	if len(suggestions) == 0 {
		r.clearRow(rows - 1)
		r.drawString(1, rows-1, NoResults, descStyle)
		return
	}
	if len(suggestions) > rows {
		suggestions = suggestions[:rows]
	}

	top := rows - len(suggestions)
	for i, s := range suggestions {
		y := top + i
		r.clearRow(y)
		x := r.drawString(1, y, s.Name, nameStyle)
		if s.Description != "" {
			r.drawString(x+1, y, s.Description, descStyle)
		}
	}
}

// drawNotices puts the newest notification on the bottom row and stacks
// the older ones right-aligned above the status line.
func (r *Renderer) drawNotices(ns []action.Notification, rows int) {
	if len(ns) == 0 {
		return
	}
	newest := ns[len(ns)-1]
	r.drawString(0, r.height-1, newest.Message, levelStyles[newest.Level])

	older := ns[:len(ns)-1]
	for i := 0; i < len(older) && i < rows; i++ {
		n := older[len(older)-1-i]
		text := runewidth.Truncate(n.Message, r.width, "…")
		x := r.width - runewidth.StringWidth(text)
		r.drawString(x, rows-1-i, text, levelStyles[n.Level])
	}
}

func (r *Renderer) clearRow(y int) {
	for x := 0; x < r.width; x++ {
		r.backend.SetContent(x, y, ' ', backend.StyleDefault)
	}
}

// drawString draws s from column x and returns the column after it.
func (r *Renderer) drawString(x, y int, s string, style backend.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.backend.SetContent(x, y, ch, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}
