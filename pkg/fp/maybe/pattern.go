package maybe

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/match"
)

type patternKind uint8

const (
	predicatePattern patternKind = iota
	literalPattern
)

// Pattern is either a predicate over the payload (When) or a literal
// Maybe compared structurally (Is). The zero Pattern never matches.
type Pattern[T any] struct {
	kind    patternKind
	pred    match.Predicate[T]
	literal Maybe[T]
	eq      func(a, b T) bool
}

// When matches if p reports true. On None p gets the zero T and ok=false.
func When[T any](p match.Predicate[T]) Pattern[T] {
	return Pattern[T]{kind: predicatePattern, pred: p}
}

// Is matches None against None and Some(x) against Some(y) with x == y.
// Payloads of non-comparable dynamic type never match.
func Is[T comparable](literal Maybe[T]) Pattern[T] {
	return Pattern[T]{
		kind:    literalPattern,
		literal: literal,
		eq:      fp.Equal[T],
	}
}

// Wildcard matches every Maybe.
func Wildcard[T any]() Pattern[T] {
	return When(match.Wildcard[T]())
}

func (p Pattern[T]) Matches(m Maybe[T]) bool {
	switch p.kind {
	case literalPattern:
		if !fp.SameVariant(p.literal, m) {
			return false
		}
		return !m.ok || p.eq(p.literal.value, m.value)
	default:
		if p.pred == nil {
			return false
		}
		return p.pred(m.value, m.ok)
	}
}

// Case builds a match arm.
func Case[T, U any](p Pattern[T], v U) match.Arm[Pattern[T], U] {
	return match.Arm[Pattern[T], U]{Pattern: p, Value: v}
}

// Match returns the value of the first arm whose pattern matches m.
func Match[T, U any](m Maybe[T], arms ...match.Arm[Pattern[T], U]) (U, error) {
	return match.Select(arms, func(p Pattern[T]) bool {
		return p.Matches(m)
	})
}

// MustMatch is Match that panics with the *fp.MatchError.
func MustMatch[T, U any](m Maybe[T], arms ...match.Arm[Pattern[T], U]) U {
	v, err := Match(m, arms...)
	if err != nil {
		panic(err)
	}
	return v
}
