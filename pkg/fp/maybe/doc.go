// Package maybe provides Maybe[T], a value that is either Some(v) or None.
//
// Same-type operations are methods; operations that change the payload
// type are package functions:
// - Some/None/FromOk/FromPtr: construct a Maybe
// - Unwrap/Expect: get the value or panic with *fp.UnwrapError
// - Map/MapOr/MapOrElse: transform the value
// - Filter/And/AndThen/Or/OrElse: chain and fall back
// - Zip/ZipWith: combine two Maybes
// - Match/MustMatch: pick the first arm whose Pattern matches
//
// Supplied functions are never called on None.
package maybe
