// Package lua hosts user Lua scripts that add command-line commands.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table,
// string and math libraries are opened, and the file-loading globals are
// removed. A script registers commands through the global modeline table:
//
//	modeline.command("hello", "Greet someone", function(args)
//	    return modeline.notify("info", "hello " .. args)
//	end)
//
// A command function receives the text after the command name and returns
// nil, one action table, or a list of action tables. Action tables are
// built with modeline.quit(), modeline.write(), modeline.close() and
// modeline.notify(level, message [, seconds]).
package lua
