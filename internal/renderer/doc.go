// Package renderer draws the editor onto a terminal backend.
//
// The screen is split into the text area, a status line showing the mode,
// macro state, file and cursor position, and a bottom line holding either
// the command line or the latest notification. Each frame keeps its own
// scroll offsets so switching frames does not lose the view.
package renderer
