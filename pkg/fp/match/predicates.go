package match

import (
	"golang.org/x/exp/constraints"

	"github.com/ib-77/fpkit/pkg/fp"
)

// Predicate tests a payload. ok is false when the receiver holds no
// value of type T; v is then the zero value and should be ignored.
type Predicate[T any] func(v T, ok bool) bool

type Number interface {
	constraints.Integer | constraints.Float
}

// Bounds selects which ends of a Range are inclusive.
type Bounds struct {
	Lower bool
	Upper bool
}

var (
	Closed     = Bounds{Lower: true, Upper: true}
	Open       = Bounds{}
	ClosedOpen = Bounds{Lower: true}
	OpenClosed = Bounds{Upper: true}
)

// Wildcard matches anything, including the absence of a value.
func Wildcard[T any]() Predicate[T] {
	return func(T, bool) bool {
		return true
	}
}

// Range matches values between lo and hi. Both ends are inclusive
// unless bounds says otherwise.
func Range[N Number](lo, hi N, bounds ...Bounds) Predicate[N] {
	b := Closed
	if len(bounds) > 0 {
		b = bounds[0]
	}

	return func(v N, ok bool) bool {
		if !ok {
			return false
		}

		aboveLo := v > lo || (b.Lower && v == lo)
		belowHi := v < hi || (b.Upper && v == hi)
		return aboveLo && belowHi
	}
}

// OneOf matches any of values. Interface values of non-comparable
// dynamic type match nothing.
func OneOf[T comparable](values ...T) Predicate[T] {
	return func(v T, ok bool) bool {
		if !ok {
			return false
		}
		for _, candidate := range values {
			if fp.Equal(candidate, v) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T, ok bool) bool {
		return !p(v, ok)
	}
}
