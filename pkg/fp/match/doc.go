// Package match contains the arm selection shared by maybe.Match and
// result.Match and the predicate builders used as function patterns.
//
// Highlights:
// - Arm/Select: ordered first-match selection with MatchError on failure
// - Predicate: func(v, ok) test where ok is false when there is no value
// - Wildcard: catch-all, conventionally the last arm
// - Range: numeric bounds test with per-side inclusivity
// - OneOf: set membership
package match
