// Package macro records and replays key macros.
//
// Every key event the editor receives is appended to a master log and
// gets a stable, absolute index. A macro is a label plus a half-open range
// [start, end) of log indices, so recording copies nothing and replay
// reads the range back.
//
// The engine sits in front of an input.Resolver and only reacts while the
// resolver is in Normal mode:
//
//	q<label>   start recording into <label>
//	q          stop recording (while recording)
//	@<label>   replay <label>
//
// Replayed keys go straight to the resolver. A "q" or "@" inside a
// replayed range is an ordinary key, never a macro trigger, and replayed
// keys are not logged again.
//
// Labels are single characters without Ctrl, Alt or Meta. Bad labels and
// replays of unknown or unfinished macros produce a notification result
// and return the engine to Idle.
package macro
