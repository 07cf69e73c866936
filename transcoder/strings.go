package transcoder

import (
	lua "github.com/yuin/gopher-lua"
)

// String is the codec for Go strings. Lua strings are byte strings, so the
// round trip is binary-safe. Reading inherits the engine's coercion rule:
// a number slot reads back as its string spelling, the same asymmetry the
// engine itself applies (contrast Bool, which opts out of coercion).
var String = Codec[string]{
	name:  "string",
	arity: 1,
	push: func(l *lua.LState, v string) {
		l.Push(lua.LString(v))
	},
	to: func(l *lua.LState, index int, out *string) bool {
		s, ok := coerceString(l.Get(index))
		if !ok {
			return false
		}
		*out = s
		return true
	},
}

// Bytes is the codec for raw byte slices, for callers that treat Lua strings
// as binary data. Reading always copies; the slice never aliases engine
// memory.
var Bytes = Codec[[]byte]{
	name:  "string",
	arity: 1,
	push: func(l *lua.LState, v []byte) {
		l.Push(lua.LString(v))
	},
	to: func(l *lua.LState, index int, out *[]byte) bool {
		s, ok := coerceString(l.Get(index))
		if !ok {
			return false
		}
		*out = []byte(s)
		return true
	},
}

// coerceString applies the engine's string coercion: strings pass through,
// numbers convert to their canonical spelling, everything else fails.
func coerceString(v lua.LValue) (string, bool) {
	switch s := v.(type) {
	case lua.LString:
		return string(s), true
	case lua.LNumber:
		return s.String(), true
	}
	return "", false
}
