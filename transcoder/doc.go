// Package transcoder converts typed Go values to and from the Lua stack.
//
// This package is the single chokepoint through which every value crossing
// the Go/Lua boundary passes. Function wrappers, object bindings and callback
// marshalling all compose the four primitives defined here.
//
// # Conversion Descriptors
//
// A Codec[T] pairs a diagnostic type name with the two conversion directions
// for one Go type:
//
//	┌────────────────────────────────────────────────────┐
//	│ Go value ──Push──▶ stack slot ──To──▶ Go value     │
//	└────────────────────────────────────────────────────┘
//
// Push is infallible and writes exactly one slot. To is fallible: it returns
// true and writes the out pointer only when the slot's dynamic type converts,
// and never changes the net stack height either way.
//
// Predefined codecs:
//
//	Int, Int32, Int64,
//	Uint, Uint32, Uint64   "integer"        exact integer coercion
//	Float32, Float64       "number"         engine number coercion
//	Bool                   "boolean"        strict, no truthiness
//	String, Bytes          "string"         engine string coercion
//	Nil                    "nil"            write-only
//	Pointer                "lightuserdata"  write-only
//	None                   "no value"       arity 0, for void results
//
// Container codecs compose recursively:
//
//	transcoder.SliceOf(transcoder.Int)             // []int    <-> {1, 2, 3}
//	transcoder.MapOf(transcoder.String, transcoder.Float64)
//	transcoder.SliceOf(transcoder.SliceOf(transcoder.Bool))
//
// Composition happens once, up front; no reflection runs during conversion.
//
// # Coercion Policy
//
// The boolean codec is stricter than the engine: 0 and "" do not read as
// booleans, only boolean slots do. The string and number codecs are exactly
// as lenient as the engine: numbers read as strings and numeric strings read
// as numbers. Truthiness would hide type errors; string/number coercion is
// part of the language.
//
// # Stack Discipline
//
// StackGuard records the stack height and restores it on every exit path:
//
//	g := transcoder.NewStackGuard(l)
//	defer g.Restore()
//
// Container conversion pushes scratch slots per element; the guard keeps
// them from accumulating across iterations or leaking past the call
// boundary, including on mid-iteration failure.
//
// # Arity
//
// Codec[T].Arity reports how many stack slots a value occupies when crossing
// a call boundary: 0 for None, the element count for PairOf/TripleOf tuple
// descriptors, 1 for everything else. Tuple descriptors carry name and arity
// only; multi-value marshalling itself belongs to the call layer.
//
// # Error Handling
//
// To reports failure as a bare bool and never panics on type mismatch.
// Check and CheckArg wrap a failed read into a structured error from the
// errors package, naming the requested codec and the dynamic type found:
//
//	[read] type_mismatch at arg2: want integer, got string
//
// Container reads report structural kinds instead: not_table when the slot
// holds something else, bad_sequence_key when a table breaks the 1..n shape,
// element when a key, value or element does not convert.
//
// # Thread Safety
//
// An *lua.LState is single-threaded by the engine's own contract, and every
// conversion here assumes exclusive access to it for the duration of one
// call. Codecs themselves are immutable values and safe to share.
package transcoder
