package match

import "github.com/ib-77/fpkit/pkg/fp"

// Arm pairs a pattern with the value Match returns when it matches.
type Arm[P, U any] struct {
	Pattern P
	Value   U
}

// Select returns the value of the first arm whose pattern passes test.
// Arms are tried strictly in order. An empty list fails with
// fp.ErrNoMatchArms before test is called; if nothing matches the
// error is fp.ErrNonExhaustive.
func Select[P, U any](arms []Arm[P, U], test func(p P) bool) (U, error) {
	var zero U

	if len(arms) == 0 {
		return zero, fp.NewMatchError(fp.MsgNoMatchArms)
	}

	for _, arm := range arms {
		if test(arm.Pattern) {
			return arm.Value, nil
		}
	}

	return zero, fp.NewMatchError(fp.MsgNonExhaustive)
}
