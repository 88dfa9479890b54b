package fp

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	MsgUnwrapNone    = "called unwrap on an Absent value"
	MsgUnwrapErr     = "called unwrap on an Err value"
	MsgUnwrapErrOnOk = "called unwrap_err on an Ok value"

	MsgNoMatchArms   = "No match arms provided"
	MsgNonExhaustive = "Non-exhaustive patterns"
)

var (
	// ErrNoMatchArms is returned by Match when called without arms.
	ErrNoMatchArms = &MatchError{msg: MsgNoMatchArms}
	// ErrNonExhaustive is returned by Match when no arm matched.
	ErrNonExhaustive = &MatchError{msg: MsgNonExhaustive}
)

// UnwrapError is the panic value of Unwrap and Expect on the empty variant.
type UnwrapError struct {
	msg    string
	traced error
}

func NewUnwrapError(msg string) *UnwrapError {
	return &UnwrapError{msg: msg, traced: errors.New(msg)}
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// StackTrace returns the stack captured when the error was created.
func (e *UnwrapError) StackTrace() errors.StackTrace {
	return stackOf(e.traced)
}

func (e *UnwrapError) Format(s fmt.State, verb rune) {
	format(s, verb, "UnwrapError", e.msg, e.traced)
}

// MatchError is returned by Match when no arm can be selected.
type MatchError struct {
	msg    string
	traced error
}

func NewMatchError(msg string) *MatchError {
	return &MatchError{msg: msg, traced: errors.New(msg)}
}

func (e *MatchError) Error() string {
	return e.msg
}

// Is matches any MatchError with the same message, so fresh errors
// compare equal to ErrNoMatchArms and ErrNonExhaustive.
func (e *MatchError) Is(target error) bool {
	t, ok := target.(*MatchError)
	return ok && t.msg == e.msg
}

func (e *MatchError) StackTrace() errors.StackTrace {
	return stackOf(e.traced)
}

func (e *MatchError) Format(s fmt.State, verb rune) {
	format(s, verb, "MatchError", e.msg, e.traced)
}

// Catch runs f and turns an *UnwrapError panic into a returned error.
// Any other panic is re-raised.
func Catch[T any](f func() T) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			ue, ok := r.(*UnwrapError)
			if !ok {
				panic(r)
			}
			err = ue
		}
	}()

	return f(), nil
}

func stackOf(err error) errors.StackTrace {
	st, ok := err.(interface{ StackTrace() errors.StackTrace })
	if !ok {
		return nil
	}
	return st.StackTrace()
}

func format(s fmt.State, verb rune, kind, msg string, traced error) {
	switch verb {
	case 'v':
		if s.Flag('+') && traced != nil {
			_, _ = fmt.Fprintf(s, "%s: %+v", kind, traced)
			return
		}
		_, _ = io.WriteString(s, msg)
	case 's':
		_, _ = io.WriteString(s, msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", msg)
	}
}
