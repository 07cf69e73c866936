package transcoder

import (
	lua "github.com/yuin/gopher-lua"
)

// Table helpers used by the container codecs and by bindings that assemble
// tables field by field. All of them address the table by stack index and
// keep the stack height unchanged apart from their documented contract.

// NewTable creates a table presized for narr sequence slots and nrec hash
// slots and pushes it onto the stack.
func NewTable(l *lua.LState, narr, nrec int) {
	l.Push(l.CreateTable(narr, nrec))
}

// RawSet writes t[k] = v on the table at index, bypassing metamethods.
// It returns false if the slot at index does not hold a table.
func RawSet[K, V any](l *lua.LState, index int, key Codec[K], k K, value Codec[V], v V) bool {
	tbl, ok := l.Get(index).(*lua.LTable)
	if !ok {
		return false
	}
	g := NewStackGuard(l)
	defer g.Restore()
	key.Push(l, k)
	value.Push(l, v)
	l.RawSet(tbl, l.Get(-2), l.Get(-1))
	return true
}

// RawGet reads t[k] from the table at index into out, bypassing metamethods.
// It returns false if the slot is not a table or the value does not convert.
func RawGet[K, V any](l *lua.LState, index int, key Codec[K], k K, value Codec[V], out *V) bool {
	tbl, ok := l.Get(index).(*lua.LTable)
	if !ok {
		return false
	}
	g := NewStackGuard(l)
	defer g.Restore()
	key.Push(l, k)
	l.Push(l.RawGet(tbl, l.Get(-1)))
	return value.To(l, -1, out)
}

// SetField writes t[name] = v on the table at index, honoring metamethods.
func SetField[V any](l *lua.LState, index int, name string, value Codec[V], v V) bool {
	tbl := l.Get(index)
	if _, ok := tbl.(*lua.LTable); !ok {
		return false
	}
	g := NewStackGuard(l)
	defer g.Restore()
	value.Push(l, v)
	l.SetField(tbl, name, l.Get(-1))
	return true
}

// GetField reads t[name] from the table at index into out, honoring
// metamethods.
func GetField[V any](l *lua.LState, index int, name string, value Codec[V], out *V) bool {
	tbl := l.Get(index)
	if _, ok := tbl.(*lua.LTable); !ok {
		return false
	}
	g := NewStackGuard(l)
	defer g.Restore()
	l.Push(l.GetField(tbl, name))
	return value.To(l, -1, out)
}
