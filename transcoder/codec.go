package transcoder

import (
	lua "github.com/yuin/gopher-lua"
)

// Codec is the conversion descriptor for one Go type: a diagnostic name, the
// number of stack slots values of the type occupy when crossing the boundary,
// and the Push/To operation pair. Codecs are plain values resolved entirely
// at composition time; SliceOf and MapOf build container codecs out of
// element codecs with no runtime type inspection.
//
// The two directions are deliberately asymmetric. Push cannot fail: any Go
// value of the codec's type has a Lua representation. To can: the slot's
// dynamic type may not match, so it reports success and writes through the
// out pointer only when the conversion holds.
type Codec[T any] struct {
	name  string
	arity int
	push  func(l *lua.LState, v T)
	to    func(l *lua.LState, index int, out *T) bool

	// check is the structured-diagnostics variant of to. Container codecs
	// provide it so Check can report what broke inside a table instead of
	// "want table, got table"; scalar codecs leave it nil and Check derives
	// the error from the codec name and the slot's dynamic type.
	check func(l *lua.LState, index int, out *T) error
}

// Name returns the diagnostic label for the codec's Lua-side type, e.g.
// "integer" or "table". It is constant per codec.
func (c Codec[T]) Name() string {
	return c.name
}

// Arity returns the number of stack slots a value of this type occupies:
// zero for the Nothing marker, the element count for tuple descriptors, one
// for everything else. Call dispatch consults it to size argument and return
// lists; it has no runtime behavior of its own.
func (c Codec[T]) Arity() int {
	return c.arity
}

// Pushable reports whether the codec has a push direction. Only tuple
// descriptors and the None marker do not.
func (c Codec[T]) Pushable() bool {
	return c.push != nil
}

// Readable reports whether the codec has a read direction. Nil, Pointer and
// tuple descriptors are write-only or name-only.
func (c Codec[T]) Readable() bool {
	return c.to != nil
}

// Push writes v as one new slot on top of the stack (containers push a single
// table slot holding the whole structure). It always succeeds; pushing
// through a name-only descriptor is a programming error and panics.
func (c Codec[T]) Push(l *lua.LState, v T) {
	c.push(l, v)
}

// To attempts to read the value at index as the codec's type. On success it
// writes through out and returns true. On any mismatch it returns false and
// leaves out untouched. The read is non-destructive: the slot stays where it
// was and the net stack height does not change.
func (c Codec[T]) To(l *lua.LState, index int, out *T) bool {
	if c.to == nil {
		return false
	}
	return c.to(l, index, out)
}
