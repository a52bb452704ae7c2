package macro

import "fmt"

// State is the macro engine's state.
type State interface {
	fmt.Stringer
	isState()
}

// Idle waits for "q" or "@".
type Idle struct{}

// AwaitingRecordLabel waits for the label to record into.
type AwaitingRecordLabel struct{}

// Recording records into Label until the next "q" in Normal mode.
type Recording struct {
	Label rune
}

// AwaitingReplayLabel waits for the label to replay.
type AwaitingReplayLabel struct{}

func (Idle) isState()                {}
func (AwaitingRecordLabel) isState() {}
func (Recording) isState()           {}
func (AwaitingReplayLabel) isState() {}

func (Idle) String() string                { return "idle" }
func (AwaitingRecordLabel) String() string { return "q_" }
func (s Recording) String() string         { return fmt.Sprintf("recording @%c", s.Label) }
func (AwaitingReplayLabel) String() string { return "@_" }
