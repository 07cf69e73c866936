package transcoder

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	lua "github.com/yuin/gopher-lua"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// Predefined codecs for the common scalar widths. Derived types instantiate
// their own with Integer or Float.
var (
	Int    = Integer[int]()
	Int32  = Integer[int32]()
	Int64  = Integer[int64]()
	Uint   = Integer[uint]()
	Uint32 = Integer[uint32]()
	Uint64 = Integer[uint64]()

	Float32 = Float[float32]()
	Float64 = Float[float64]()
)

// Integer returns the codec for an integer type of any width or sign.
// Reading requires an exact integer coercion: non-integral numbers and values
// outside T's range fail. Numeric strings are accepted, inheriting the
// engine's number coercion.
func Integer[T integer]() Codec[T] {
	unsigned := ^T(0) > 0
	return Codec[T]{
		name:  "integer",
		arity: 1,
		push: func(l *lua.LState, v T) {
			l.Push(lua.LNumber(v))
		},
		to: func(l *lua.LState, index int, out *T) bool {
			n, ok := toNumber(l.Get(index))
			if !ok || n != math.Trunc(n) {
				return false
			}
			// the funnel matches T's signedness: uint64 covers the unsigned
			// widths up to 2^64, int64 the signed ones up to 2^63
			var v T
			if unsigned {
				if n < 0 || n >= uint64Limit {
					return false
				}
				v = T(uint64(n))
			} else {
				if n <= -int64Limit || n >= int64Limit {
					return false
				}
				v = T(int64(n))
			}
			if float64(v) != n {
				return false
			}
			*out = v
			return true
		},
	}
}

// Float returns the codec for a floating point type. Reading accepts
// anything the engine coerces to a number.
func Float[T float]() Codec[T] {
	return Codec[T]{
		name:  "number",
		arity: 1,
		push: func(l *lua.LState, v T) {
			l.Push(lua.LNumber(v))
		},
		to: func(l *lua.LState, index int, out *T) bool {
			n, ok := toNumber(l.Get(index))
			if !ok {
				return false
			}
			*out = T(n)
			return true
		},
	}
}

// Bool is the boolean codec. Reading is strict: only an actual boolean slot
// converts. The engine's truthy/falsy rule (everything except nil and false
// is true) is deliberately not applied, so passing 0 or "" where a boolean is
// expected surfaces as a type error instead of silently reading as true.
var Bool = Codec[bool]{
	name:  "boolean",
	arity: 1,
	push: func(l *lua.LState, v bool) {
		l.Push(lua.LBool(v))
	},
	to: func(l *lua.LState, index int, out *bool) bool {
		b, ok := l.Get(index).(lua.LBool)
		if !ok {
			return false
		}
		*out = bool(b)
		return true
	},
}

// Nothing marks the absence of a value.
type Nothing struct{}

// None is the descriptor for "no value at all": zero stack slots, nothing to
// push or read. Call dispatch uses its arity for void results.
var None = Codec[Nothing]{
	name:  "no value",
	arity: 0,
}

// Nil pushes the nil value. Absence is only ever produced, never read back,
// so the codec has no read direction.
var Nil = Codec[Nothing]{
	name:  "nil",
	arity: 1,
	push: func(l *lua.LState, _ Nothing) {
		l.Push(lua.LNil)
	},
}

// Pointer pushes a raw, non-owning pointer as opaque userdata. Write-only:
// raw pointers are never handed back to Go through this layer. The engine
// has no light userdata representation, so the pointer rides in a regular
// userdata wrapper; the diagnostic name keeps the conventional label.
var Pointer = Codec[unsafe.Pointer]{
	name:  "lightuserdata",
	arity: 1,
	push: func(l *lua.LState, v unsafe.Pointer) {
		ud := l.NewUserData()
		ud.Value = v
		l.Push(ud)
	},
}

// 2^63 and 2^64 as float64 values.
var (
	int64Limit  = math.Ldexp(1, 63)
	uint64Limit = math.Ldexp(1, 64)
)

// toNumber applies the engine's number coercion: numbers convert directly,
// strings convert when they spell a number in the engine's grammar,
// everything else fails. The engine's grammar is narrower than Go's: no
// digit separators, no binary or octal literals, hex only behind 0x.
func toNumber(v lua.LValue) (float64, bool) {
	switch n := v.(type) {
	case lua.LNumber:
		return float64(n), true
	case lua.LString:
		s := strings.TrimSpace(string(n))
		if strings.Contains(s, "_") {
			return 0, false
		}
		// hex integers ("0xff") are numbers to the engine but not to ParseFloat
		if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
			if i, err := strconv.ParseUint(s[2:], 16, 64); err == nil {
				return float64(i), true
			}
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
