package result

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/match"
)

type patternKind uint8

const (
	predicatePattern patternKind = iota
	okPredicatePattern
	errPredicatePattern
	literalPattern
)

// Pattern is a predicate over the payload (When, OkWhen, ErrWhen) or a
// literal Result compared structurally (Is). The zero Pattern never
// matches.
type Pattern[T, E any] struct {
	kind    patternKind
	pred    func(v T, e E) bool
	okPred  match.Predicate[T]
	errPred match.Predicate[E]
	literal Result[T, E]
	eqValue func(a, b T) bool
	eqErr   func(a, b E) bool
}

// When matches if p reports true for the active payload. The other
// argument is the zero value, so p can tell the variants apart only by
// value.
func When[T, E any](p func(v T, e E) bool) Pattern[T, E] {
	return Pattern[T, E]{kind: predicatePattern, pred: p}
}

// OkWhen runs p over the value; ok is false on Err.
func OkWhen[T, E any](p match.Predicate[T]) Pattern[T, E] {
	return Pattern[T, E]{kind: okPredicatePattern, okPred: p}
}

// ErrWhen runs p over the error; ok is false on Ok.
func ErrWhen[T, E any](p match.Predicate[E]) Pattern[T, E] {
	return Pattern[T, E]{kind: errPredicatePattern, errPred: p}
}

// Is matches Ok(x) against Ok(y) with x == y and Err(x) against Err(y)
// with x == y. Different variants never match, nor do payloads of
// non-comparable dynamic type.
func Is[T, E comparable](literal Result[T, E]) Pattern[T, E] {
	return Pattern[T, E]{
		kind:    literalPattern,
		literal: literal,
		eqValue: fp.Equal[T],
		eqErr:   fp.Equal[E],
	}
}

// Wildcard matches every Result.
func Wildcard[T, E any]() Pattern[T, E] {
	return When(func(T, E) bool { return true })
}

func (p Pattern[T, E]) Matches(r Result[T, E]) bool {
	switch p.kind {
	case literalPattern:
		if !fp.SameVariant(p.literal, r) {
			return false
		}
		if r.ok {
			return p.eqValue(p.literal.value, r.value)
		}
		return p.eqErr(p.literal.err, r.err)
	case okPredicatePattern:
		if p.okPred == nil {
			return false
		}
		if r.ok {
			return p.okPred(r.value, true)
		}
		var zero T
		return p.okPred(zero, false)
	case errPredicatePattern:
		if p.errPred == nil {
			return false
		}
		if !r.ok {
			return p.errPred(r.err, true)
		}
		var zero E
		return p.errPred(zero, false)
	default:
		if p.pred == nil {
			return false
		}
		var (
			zeroT T
			zeroE E
		)
		if r.ok {
			return p.pred(r.value, zeroE)
		}
		return p.pred(zeroT, r.err)
	}
}

// Case builds a match arm.
func Case[T, E, U any](p Pattern[T, E], v U) match.Arm[Pattern[T, E], U] {
	return match.Arm[Pattern[T, E], U]{Pattern: p, Value: v}
}

// Match returns the value of the first arm whose pattern matches r.
func Match[T, E, U any](r Result[T, E], arms ...match.Arm[Pattern[T, E], U]) (U, error) {
	return match.Select(arms, func(p Pattern[T, E]) bool {
		return p.Matches(r)
	})
}

// MustMatch is Match that panics with the *fp.MatchError.
func MustMatch[T, E, U any](r Result[T, E], arms ...match.Arm[Pattern[T, E], U]) U {
	v, err := Match(r, arms...)
	if err != nil {
		panic(err)
	}
	return v
}
