package lua

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modeline/internal/action"
)

// Action table kinds.
const (
	KindQuit   = "quit"
	KindWrite  = "write"
	KindClose  = "close"
	KindNotify = "notify"
)

// ToActions converts a command's return value into actions. It accepts nil,
// a single action table, or an array of action tables.
func ToActions(lv lua.LValue) ([]action.Action, error) {
	t, ok := lv.(*lua.LTable)
	if !ok {
		if lv == lua.LNil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: got %s", ErrBadAction, lv.Type())
	}

	if t.RawGetString("kind") != lua.LNil {
		a, err := toAction(t)
		if err != nil {
			return nil, err
		}
		return []action.Action{a}, nil
	}

	n := t.Len()
	out := make([]action.Action, 0, n)
	for i := 1; i <= n; i++ {
		item, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s", ErrBadAction, i, t.RawGetInt(i).Type())
		}
		a, err := toAction(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func toAction(t *lua.LTable) (action.Action, error) {
	kind, ok := t.RawGetString("kind").(lua.LString)
	if !ok {
		return nil, fmt.Errorf("%w: missing kind", ErrBadAction)
	}

	switch string(kind) {
	case KindQuit:
		return action.Quit{}, nil
	case KindWrite:
		return action.WriteActiveBuffer{}, nil
	case KindClose:
		return action.CloseActiveBuffer{}, nil
	case KindNotify:
		msg, ok := t.RawGetString("message").(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: notify needs a message", ErrBadAction)
		}
		level := action.LevelInfo
		if lv, ok := t.RawGetString("level").(lua.LString); ok {
			level = action.ParseLevel(string(lv))
		}
		d := action.ShortNotice
		if secs, ok := t.RawGetString("seconds").(lua.LNumber); ok && secs > 0 {
			d = time.Duration(float64(secs) * float64(time.Second))
		}
		return action.Notify(level, string(msg), d), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrBadAction, string(kind))
	}
}

func newActionTable(L *lua.LState, kind string) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("kind", lua.LString(kind))
	return t
}

// actionConstructor returns a Lua function building an argument-less action.
func actionConstructor(kind string) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(newActionTable(L, kind))
		return 1
	}
}

// luaNotify implements modeline.notify(level, message [, seconds]).
func luaNotify(L *lua.LState) int {
	t := newActionTable(L, KindNotify)
	t.RawSetString("level", lua.LString(L.CheckString(1)))
	t.RawSetString("message", lua.LString(L.CheckString(2)))
	if L.GetTop() >= 3 {
		t.RawSetString("seconds", L.CheckNumber(3))
	}
	L.Push(t)
	return 1
}
