package transcoder

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/wippyai/lua-runtime/errors"
)

// SliceOf builds the codec for an ordered sequence of elem's type, carried as
// a table with strictly consecutive integer keys 1..n.
//
// Pushing writes one table slot sized for the slice. Reading walks the table
// with the engine's traversal primitive and fails fast on anything that is
// not a plain array: a non-numeric key, a gap, or an element that does not
// convert. The out pointer is written only after the whole table has
// converted, so a failed read leaves the destination untouched.
func SliceOf[T any](elem Codec[T]) Codec[[]T] {
	read := func(l *lua.LState, index int, out *[]T) error {
		tbl, ok := l.Get(index).(*lua.LTable)
		if !ok {
			return errors.NotTable(errors.PhaseRead, nil, TypeNameOf(l, index))
		}
		g := NewStackGuard(l)
		defer g.Restore()

		acc := make([]T, 0, tbl.Len())
		key := lua.LValue(lua.LNil)
		for {
			k, v := tbl.Next(key)
			if k == lua.LNil {
				break
			}
			kn, numeric := k.(lua.LNumber)
			if !numeric || float64(kn) != float64(len(acc)+1) {
				debugf("sequence read: key %v breaks 1..n shape at element %d", k, len(acc))
				return errors.BadSequenceKey(errors.PhaseRead, nil, k, len(acc)+1)
			}
			// scratch slot so the element codec reads a stack index
			l.Push(v)
			var ev T
			if !elem.To(l, -1, &ev) {
				debugf("sequence read: element %d is not %s", len(acc)+1, elem.Name())
				return errors.Element(errors.PhaseRead, nil, len(acc)+1,
					errors.TypeMismatch(errors.PhaseRead, nil, elem.Name(), TypeNameOf(l, -1)))
			}
			g.Restore()
			acc = append(acc, ev)
			key = k
		}
		*out = acc
		return nil
	}
	return Codec[[]T]{
		name:  "table",
		arity: 1,
		push: func(l *lua.LState, vs []T) {
			tbl := l.CreateTable(len(vs), 0)
			g := NewStackGuard(l)
			for i, v := range vs {
				elem.Push(l, v)
				l.RawSetInt(tbl, i+1, l.Get(-1))
				g.Restore()
			}
			l.Push(tbl)
		},
		to: func(l *lua.LState, index int, out *[]T) bool {
			return read(l, index, out) == nil
		},
		check: read,
	}
}

// MapOf builds the codec for a mapping from key's type to value's type,
// carried as a table with arbitrary keys.
//
// Reading converts every key/value pair through the element codecs and fails
// if any pair does not convert. Duplicate keys after conversion follow
// mapping semantics: last write wins, in the engine's iteration order.
// As with SliceOf, the destination is only written on full success.
func MapOf[K comparable, V any](key Codec[K], value Codec[V]) Codec[map[K]V] {
	read := func(l *lua.LState, index int, out *map[K]V) error {
		tbl, ok := l.Get(index).(*lua.LTable)
		if !ok {
			return errors.NotTable(errors.PhaseRead, nil, TypeNameOf(l, index))
		}
		g := NewStackGuard(l)
		defer g.Restore()

		acc := make(map[K]V)
		cursor := lua.LValue(lua.LNil)
		for {
			k, v := tbl.Next(cursor)
			if k == lua.LNil {
				break
			}
			l.Push(k)
			l.Push(v)
			var mk K
			if !key.To(l, -2, &mk) {
				debugf("map read: key %s is not %s", TypeNameOf(l, -2), key.Name())
				return errors.New(errors.PhaseRead, errors.KindElement).
					Want(key.Name()).
					Got(TypeNameOf(l, -2)).
					Detail("map key does not convert").
					Build()
			}
			var mv V
			if !value.To(l, -1, &mv) {
				debugf("map read: value %s is not %s", TypeNameOf(l, -1), value.Name())
				return errors.New(errors.PhaseRead, errors.KindElement).
					Want(value.Name()).
					Got(TypeNameOf(l, -1)).
					Detail("map value does not convert").
					Build()
			}
			g.Restore()
			acc[mk] = mv
			cursor = k
		}
		*out = acc
		return nil
	}
	return Codec[map[K]V]{
		name:  "table",
		arity: 1,
		push: func(l *lua.LState, m map[K]V) {
			tbl := l.CreateTable(0, len(m))
			g := NewStackGuard(l)
			for k, v := range m {
				key.Push(l, k)
				value.Push(l, v)
				l.RawSet(tbl, l.Get(-2), l.Get(-1))
				g.Restore()
			}
			l.Push(tbl)
		},
		to: func(l *lua.LState, index int, out *map[K]V) bool {
			return read(l, index, out) == nil
		},
		check: read,
	}
}
