// Package fp holds what the maybe and result containers share: the
// Unwrapper and Variant contracts and the two failure kinds.
//
// UnwrapError is the panic value of Unwrap/Expect on None or Err;
// MatchError is returned by Match when the arm list is empty
// (ErrNoMatchArms) or nothing matched (ErrNonExhaustive). Both capture a
// stack trace at construction, printed with %+v.
package fp
