// Package cursor implements the cursor motion engine.
//
// A Cursor is a (line, column) position plus an optional remembered
// column. The remembered column records where a vertical move wanted to
// land when the target line was too short; the next vertical move into a
// line long enough restores it. Any horizontal move forgets it.
//
// How far right the cursor may travel depends on the editing mode and is
// passed to each motion as a Reach:
//
//   - ReachLastChar: the column stays on a character (len-1, or 0 on an
//     empty line). Used by Normal, Visual and Command modes.
//   - ReachPastEnd: the column may sit one past the last character.
//     Used by Insert mode.
//
// All motions are total over a buffer with at least one line.
package cursor
