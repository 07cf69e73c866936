package transcoder

import (
	lua "github.com/yuin/gopher-lua"
)

// Tag classifies the dynamic value held in a stack slot. The values mirror
// the engine's own type constants, with TagNone standing in for a slot that
// does not exist at all.
type Tag int

const (
	TagNone     Tag = -1
	TagNil      Tag = Tag(lua.LTNil)
	TagBool     Tag = Tag(lua.LTBool)
	TagNumber   Tag = Tag(lua.LTNumber)
	TagString   Tag = Tag(lua.LTString)
	TagFunction Tag = Tag(lua.LTFunction)
	TagUserData Tag = Tag(lua.LTUserData)
	TagThread   Tag = Tag(lua.LTThread)
	TagTable    Tag = Tag(lua.LTTable)
	TagChannel  Tag = Tag(lua.LTChannel)
)

// String returns the engine's diagnostic name for the tag.
func (t Tag) String() string {
	if t == TagNone {
		return "no value"
	}
	return lua.LValueType(t).String()
}

// TypeOf returns the dynamic type tag of the value at index. An index outside
// the live stack yields TagNone. It never fails and has no side effects.
func TypeOf(l *lua.LState, index int) Tag {
	if !onStack(l, index) {
		return TagNone
	}
	return Tag(l.Get(index).Type())
}

// TypeNameOf returns a human-readable name for the type of the value at
// index. It is meant for error messages, never for control flow.
func TypeNameOf(l *lua.LState, index int) string {
	return TypeOf(l, index).String()
}

// onStack reports whether index addresses a live slot. Both 1-based positive
// indices and negative indices relative to the top (top = -1) are accepted.
func onStack(l *lua.LState, index int) bool {
	top := l.GetTop()
	if index < 0 {
		index = top + index + 1
	}
	return index >= 1 && index <= top
}
