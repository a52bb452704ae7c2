package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// removedGlobals can load code from disk or strings and escape the sandbox.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// openSafeLibraries opens only the libraries scripts need.
// io, os, debug, package and channel are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	L.SetTop(0)

	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}
