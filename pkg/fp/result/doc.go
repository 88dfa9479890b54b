// Package result provides Result[T, E], the outcome of a computation
// that either succeeded with a T (Ok) or failed with an E (Err).
//
// Success-path operations (Map, AndThen, UnwrapOr*) act on T and pass
// Err through untouched; error-path operations (MapErr, OrElse) act on E
// and pass Ok through untouched. Ok and Err convert to maybe.Maybe,
// discarding the other side. From bridges Go's (T, error) returns.
//
// Match/MustMatch select the first arm whose Pattern matches; literal
// patterns built with Is never match across variants.
package result
