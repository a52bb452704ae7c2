// Package editor applies key events to the active frame.
//
// HandleKey runs one key event through the macro engine and applies each
// result in order: cursor intents move the active frame's cursor, insert
// results edit its buffer, and mode changes switch how far right the
// cursor may travel. Whatever is left over is returned as actions for the
// host application.
package editor
