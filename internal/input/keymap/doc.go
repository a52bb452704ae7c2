// Package keymap maps Normal-mode keys to named bindings.
//
// A binding name identifies what a key does: "cursor.moveLeft",
// "mode.insert", "buffer.write" and so on. Names starting with ":" run
// that text as a command-line command, so "<C-q>" = ":q" quits.
//
// Keymaps are built from defaults and then overridden from
// configuration:
//
//	km := keymap.Default()
//	err := km.Apply(map[string]string{
//	    "<C-q>": ":q",
//	    "H":     "cursor.moveLineStart",
//	    "$":     "", // unbind
//	})
package keymap
