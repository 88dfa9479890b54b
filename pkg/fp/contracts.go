package fp

// Unwrapper is the accessor contract shared by maybe.Maybe and result.Result.
type Unwrapper[T any] interface {
	// Unwrap returns the held value or panics with *UnwrapError
	Unwrap() T
	// Expect is Unwrap with a caller supplied panic message
	Expect(msg string) T
	// UnwrapOr returns the held value or def
	UnwrapOr(def T) T
}

// Variant is implemented by every two-variant container.
type Variant interface {
	// Holds reports whether the container is in its value-carrying variant
	// (Some for maybe, Ok for result).
	Holds() bool
}

// SameVariant reports whether a and b are both in the value-carrying
// variant or both in the empty one.
func SameVariant(a, b Variant) bool {
	return a.Holds() == b.Holds()
}

// TryUnwrap unwraps u, returning the *UnwrapError instead of panicking.
func TryUnwrap[T any](u Unwrapper[T]) (T, error) {
	return Catch(u.Unwrap)
}
