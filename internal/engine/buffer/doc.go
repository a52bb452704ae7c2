// Package buffer defines the text-buffer capability the editor core works
// against, plus a concrete line-structured implementation.
//
// Positions are character (rune) based. A buffer always has at least one
// line; an empty buffer has one empty line. Line lengths never include the
// line terminator. Character offsets address the whole text with a single
// '\n' between adjacent lines, so line n starts at
// sum(LineLen(i)+1) for i < n.
//
// Basic usage:
//
//	buf := buffer.FromString("hello\nworld")
//	buf.LineCount()          // 2
//	buf.LineLen(1)           // 5
//	buf.InsertChar(5, '!')   // "hello!\nworld"
//	buf.DeleteRange(0, 1)    // "ello!\nworld"
package buffer
