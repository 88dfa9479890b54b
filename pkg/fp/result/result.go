package result

import (
	"fmt"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/maybe"
)

// Result is either Ok(value) or Err(err). The zero value is an Err
// holding the zero E; build Results with Ok, Err or From.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

var (
	_ fp.Unwrapper[int] = Result[int, error]{}
	_ fp.Variant        = Result[int, error]{}
)

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From converts a (value, error) pair. A nil error, including a typed
// nil pointer stored in the interface, gives Ok(v).
func From[T any](v T, err error) Result[T, error] {
	if fp.IsNil(err) {
		return Ok[T, error](v)
	}
	return Err[T](err)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) Holds() bool {
	return r.ok
}

// IsOkAnd reports whether r is Ok and p holds for its value. p is not
// called on Err.
func (r Result[T, E]) IsOkAnd(p func(v T) bool) bool {
	return r.ok && p(r.value)
}

// IsErrAnd reports whether r is Err and p holds for its error. p is not
// called on Ok.
func (r Result[T, E]) IsErrAnd(p func(e E) bool) bool {
	return !r.ok && p(r.err)
}

// Get returns both slots and whether r is Ok. The inactive slot is the
// zero value.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[T, E]) Unwrap() T {
	return r.Expect(fp.MsgUnwrapErr)
}

func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fp.NewUnwrapError(msg))
	}
	return r.value
}

// UnwrapErr returns the error or panics with *fp.UnwrapError on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fp.NewUnwrapError(fp.MsgUnwrapErrOnOk))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(def func(e E) T) T {
	if r.ok {
		return r.value
	}
	return def(r.err)
}

// Ok converts r to a Maybe of its value, dropping the error.
func (r Result[T, E]) Ok() maybe.Maybe[T] {
	return maybe.FromOk(r.value, r.ok)
}

// Err converts r to a Maybe of its error, dropping the value.
func (r Result[T, E]) Err() maybe.Maybe[E] {
	return maybe.FromOk(r.err, !r.ok)
}

// Inspect calls f with the value on Ok and returns r unchanged.
func (r Result[T, E]) Inspect(f func(v T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error on Err and returns r unchanged.
func (r Result[T, E]) InspectErr(f func(e E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func Map[T, U, E any](r Result[T, E], f func(v T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U](r.err)
}

func MapErr[T, E, F any](r Result[T, E], f func(e E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.err))
}

func MapOr[T, U, E any](r Result[T, E], def U, f func(v T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapOrElse applies f to the value on Ok and def to the error on Err.
func MapOrElse[T, U, E any](r Result[T, E], def func(e E) U, f func(v T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def(r.err)
}

func AndThen[T, U, E any](r Result[T, E], f func(v T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U](r.err)
}

func OrElse[T, E, F any](r Result[T, E], f func(e E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}
