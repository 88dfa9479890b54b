package maybe

import (
	"fmt"

	"github.com/ib-77/fpkit/pkg/fp"
)

// Maybe holds either a value (Some) or nothing (None). The zero value
// is None.
type Maybe[T any] struct {
	value T
	ok    bool
}

var (
	_ fp.Unwrapper[int] = Maybe[int]{}
	_ fp.Variant        = Maybe[int]{}
)

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOk builds a Maybe from the comma-ok idiom.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr is None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (m Maybe[T]) IsSome() bool {
	return m.ok
}

func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

func (m Maybe[T]) Holds() bool {
	return m.ok
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

func (m Maybe[T]) Unwrap() T {
	return m.Expect(fp.MsgUnwrapNone)
}

func (m Maybe[T]) Expect(msg string) T {
	if !m.ok {
		panic(fp.NewUnwrapError(msg))
	}
	return m.value
}

func (m Maybe[T]) UnwrapOr(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

func (m Maybe[T]) UnwrapOrElse(def func() T) T {
	if m.ok {
		return m.value
	}
	return def()
}

// Filter keeps the value only if keep reports true for it.
func (m Maybe[T]) Filter(keep func(v T) bool) Maybe[T] {
	if m.ok && keep(m.value) {
		return m
	}
	return None[T]()
}

// Or returns m if it holds a value, other otherwise.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return other
}

// OrElse is Or with a lazily built fallback.
func (m Maybe[T]) OrElse(other func() Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return other()
}

// Inspect calls f with the value, if any, and returns m unchanged.
func (m Maybe[T]) Inspect(f func(v T)) Maybe[T] {
	if m.ok {
		f(m.value)
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "None"
}

// Contains reports whether m is Some(x).
func Contains[T comparable](m Maybe[T], x T) bool {
	return m.ok && fp.Equal(m.value, x)
}

func Map[T, U any](m Maybe[T], f func(v T) U) Maybe[U] {
	if m.ok {
		return Some(f(m.value))
	}
	return None[U]()
}

func MapOr[T, U any](m Maybe[T], def U, f func(v T) U) U {
	if m.ok {
		return f(m.value)
	}
	return def
}

func MapOrElse[T, U any](m Maybe[T], def func() U, f func(v T) U) U {
	if m.ok {
		return f(m.value)
	}
	return def()
}

// And returns other if m holds a value, None otherwise.
func And[T, U any](m Maybe[T], other Maybe[U]) Maybe[U] {
	if m.ok {
		return other
	}
	return None[U]()
}

func AndThen[T, U any](m Maybe[T], f func(v T) Maybe[U]) Maybe[U] {
	if m.ok {
		return f(m.value)
	}
	return None[U]()
}

// Flatten removes one level of nesting.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if m.ok {
		return m.value
	}
	return None[T]()
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip is Some of both values when both are present.
func Zip[T, U any](m Maybe[T], other Maybe[U]) Maybe[Pair[T, U]] {
	if !m.ok {
		return None[Pair[T, U]]()
	}
	return Map(other, func(o U) Pair[T, U] {
		return Pair[T, U]{First: m.value, Second: o}
	})
}

func ZipWith[T, U, R any](m Maybe[T], other Maybe[U], f func(a T, b U) R) Maybe[R] {
	return Map(Zip(m, other), func(p Pair[T, U]) R {
		return f(p.First, p.Second)
	})
}
