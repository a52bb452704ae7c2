package cursor

import (
	"fmt"

	"github.com/dshills/modeline/internal/engine/buffer"
)

// Motion is a cursor movement intent produced by input handling.
type Motion uint8

// Motions.
const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionParagraphForward
	MotionParagraphBackward
)

var motionNames = map[Motion]string{
	MotionNone:              "none",
	MotionLeft:              "left",
	MotionRight:             "right",
	MotionUp:                "up",
	MotionDown:              "down",
	MotionLineStart:         "line-start",
	MotionLineEnd:           "line-end",
	MotionParagraphForward:  "paragraph-forward",
	MotionParagraphBackward: "paragraph-backward",
}

// String returns the motion name.
func (m Motion) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Motion(%d)", m)
}

// Apply performs the motion on c.
func (m Motion) Apply(c *Cursor, buf buffer.Reader, reach Reach) {
	switch m {
	case MotionLeft:
		c.MoveLeft()
	case MotionRight:
		c.MoveRight(buf, reach)
	case MotionUp:
		c.MoveUp(buf, reach)
	case MotionDown:
		c.MoveDown(buf, reach)
	case MotionLineStart:
		c.LineStart()
	case MotionLineEnd:
		c.LineEnd(buf, reach)
	case MotionParagraphForward:
		c.ParagraphForward(buf)
	case MotionParagraphBackward:
		c.ParagraphBackward(buf)
	}
}
