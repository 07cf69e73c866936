package transcoder

// Pair is a fixed two-value shape crossing the boundary as two stack slots.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the three-value counterpart of Pair.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairOf returns the descriptor for a two-value tuple. Tuple descriptors
// carry a diagnostic name and slot count only: the values span multiple
// slots, so pushing and reading them element by element is the call layer's
// job, using the element codecs passed here.
func PairOf[A, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		name:  "tuple<>",
		arity: first.Arity() + second.Arity(),
	}
}

// TripleOf returns the descriptor for a three-value tuple.
func TripleOf[A, B, C any](first Codec[A], second Codec[B], third Codec[C]) Codec[Triple[A, B, C]] {
	return Codec[Triple[A, B, C]]{
		name:  "tuple<>",
		arity: first.Arity() + second.Arity() + third.Arity(),
	}
}
