// Package input interprets key events according to the current input mode.
//
// A Resolver owns the active mode. Each key event resolves to an ordered
// list of results:
//
//   - Insert: a key to be inserted into the buffer
//   - CursorIntent: a cursor motion to apply
//   - ModeChange: the mode the resolver switched to
//   - ActionResult: a request for the host application
//
// Normal-mode keys are looked up in a keymap. Command-mode text is
// executed through a command.Registry when Enter is pressed.
//
// # Usage
//
//	reg := command.NewRegistry()
//	command.RegisterBuiltins(reg)
//	r := input.NewResolver(reg)
//
//	for _, res := range r.Resolve(ev) {
//	    switch res := res.(type) {
//	    case input.CursorIntent:
//	        // move the cursor
//	    case input.ActionResult:
//	        // hand res.Action to the host
//	    }
//	}
package input
