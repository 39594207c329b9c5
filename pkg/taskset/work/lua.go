package work

import (
	"context"
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// Lua is a task running a Lua chunk. The chunk sees a params table and a
// progress(percent) function; raising an error fails the task. Only the base,
// table, string and math libraries are available.
type Lua struct {
	*Base
	script string
	params map[string]any
}

func NewLua(name, script string, params map[string]any) *Lua {
	return &Lua{Base: NewBase(name), script: script, params: params}
}

func (l *Lua) RunSync(ctx context.Context) {
	l.Start(ctx, false, l.execute)
}

func (l *Lua) RunAsync(ctx context.Context) {
	l.Start(ctx, true, l.execute)
}

func (l *Lua) execute(ctx context.Context) error {
	L := newSandboxedState()
	defer L.Close()
	L.SetContext(ctx)

	L.SetGlobal("progress", L.NewFunction(func(L *lua.LState) int {
		l.SetProgress(float64(L.CheckNumber(1)))
		return 0
	}))
	L.SetGlobal("params", toLuaValue(L, l.params))

	if err := L.DoString(l.script); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", l.Name(), ctx.Err())
		}
		return fmt.Errorf("%s: %w", l.Name(), err)
	}
	return nil
}

// newSandboxedState opens no io, os, debug or package library and removes
// the base functions able to load code from files or strings.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func toLuaValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(val)
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case map[string]any:
		tbl := L.NewTable()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			tbl.RawSetString(k, toLuaValue(L, val[k]))
		}
		return tbl
	case []any:
		tbl := L.NewTable()
		for _, item := range val {
			tbl.Append(toLuaValue(L, item))
		}
		return tbl
	default:
		return lua.LString(fmt.Sprint(val))
	}
}
