package editor

import (
	"github.com/dshills/modeline/internal/engine/buffer"
	"github.com/dshills/modeline/internal/engine/cursor"
	"github.com/dshills/modeline/internal/frame"
	"github.com/dshills/modeline/internal/input/key"
)

// insert applies an Insert-mode key to the frame.
func (e *Editor) insert(f *frame.Frame, ev key.Event) error {
	c := &f.Cursor
	buf := f.Buffer

	switch {
	case ev.IsRune() && !ev.IsModified():
		return insertRunes(f, ev.Rune)

	case ev.Key == key.KeyTab && ev.Modifiers == key.ModNone:
		if !e.tabSpaces {
			return insertRunes(f, '\t')
		}
		n := e.tabWidth - c.Column%e.tabWidth
		spaces := make([]rune, n)
		for i := range spaces {
			spaces[i] = ' '
		}
		return insertRunes(f, spaces...)

	case ev.IsEnter():
		if err := buf.InsertChar(buffer.Offset(buf, c.Line, c.Column), '\n'); err != nil {
			return err
		}
		c.GoTo(buf, c.Line+1, 0, cursor.ReachPastEnd)
		return nil

	case ev.IsBackspace():
		off := buffer.Offset(buf, c.Line, c.Column)
		switch {
		case c.Column > 0:
			if err := buf.DeleteRange(off-1, off); err != nil {
				return err
			}
			c.GoTo(buf, c.Line, c.Column-1, cursor.ReachPastEnd)
		case c.Line > 0:
			prev := buf.LineLen(c.Line - 1)
			if err := buf.DeleteRange(off-1, off); err != nil {
				return err
			}
			c.GoTo(buf, c.Line-1, prev, cursor.ReachPastEnd)
		}
		return nil

	case ev.Key == key.KeyDelete && ev.Modifiers == key.ModNone:
		if c.Column >= buf.LineLen(c.Line) && c.Line+1 >= buf.LineCount() {
			return nil
		}
		off := buffer.Offset(buf, c.Line, c.Column)
		return buf.DeleteRange(off, off+1)

	case ev.Modifiers == key.ModNone:
		switch ev.Key {
		case key.KeyLeft:
			c.MoveLeft()
		case key.KeyRight:
			c.MoveRight(buf, cursor.ReachPastEnd)
		case key.KeyUp:
			c.MoveUp(buf, cursor.ReachPastEnd)
		case key.KeyDown:
			c.MoveDown(buf, cursor.ReachPastEnd)
		case key.KeyHome:
			c.LineStart()
		case key.KeyEnd:
			c.LineEnd(buf, cursor.ReachPastEnd)
		}
	}
	return nil
}

// insertRunes inserts rs at the cursor and moves past them.
func insertRunes(f *frame.Frame, rs ...rune) error {
	c := &f.Cursor
	for _, r := range rs {
		if err := f.Buffer.InsertChar(buffer.Offset(f.Buffer, c.Line, c.Column), r); err != nil {
			return err
		}
		c.GoTo(f.Buffer, c.Line, c.Column+1, cursor.ReachPastEnd)
	}
	return nil
}
