package result

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/maybe"
)

const (
	okValue      = 42
	errorMessage = "Let's test some errors"
)

func okResult() Result[int, string] {
	return Ok[int, string](okValue)
}

func errResult() Result[int, string] {
	return Err[int](errorMessage)
}

func TestIsOkIsErr(t *testing.T) {
	t.Parallel()

	assert.True(t, okResult().IsOk())
	assert.False(t, okResult().IsErr())
	assert.True(t, okResult().Holds())
	assert.False(t, errResult().IsOk())
	assert.True(t, errResult().IsErr())
	assert.False(t, errResult().Holds())
}

func TestZeroValue_IsErr(t *testing.T) {
	t.Parallel()
	var r Result[int, string]

	assert.True(t, r.IsErr())
	assert.Equal(t, maybe.Some(""), r.Err())
}

func TestIsOkAnd(t *testing.T) {
	t.Parallel()

	assert.True(t, okResult().IsOkAnd(func(v int) bool { return v == okValue }))
	assert.False(t, okResult().IsOkAnd(func(v int) bool { return v == -1 }))

	called := false
	assert.False(t, errResult().IsOkAnd(func(int) bool {
		called = true
		return true
	}))
	assert.False(t, called)
}

func TestIsErrAnd(t *testing.T) {
	t.Parallel()

	assert.True(t, errResult().IsErrAnd(func(e string) bool { return e == errorMessage }))
	assert.False(t, errResult().IsErrAnd(func(e string) bool { return e == "" }))

	called := false
	assert.False(t, okResult().IsErrAnd(func(string) bool {
		called = true
		return true
	}))
	assert.False(t, called)
}

func TestUnwrapAndExpect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, okValue, okResult().Unwrap())
	assert.Equal(t, okValue, okResult().Expect("this should work"))

	assert.PanicsWithError(t, fp.MsgUnwrapErr, func() {
		errResult().Unwrap()
	})
	assert.PanicsWithError(t, errorMessage, func() {
		errResult().Expect(errorMessage)
	})
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errorMessage, errResult().UnwrapErr())
	assert.PanicsWithError(t, fp.MsgUnwrapErrOnOk, func() {
		okResult().UnwrapErr()
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, okValue, okResult().UnwrapOr(-1))
	assert.Equal(t, -1, errResult().UnwrapOr(-1))
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()
	byLength := func(e string) int { return len(e) }

	assert.Equal(t, okValue, okResult().UnwrapOrElse(byLength))
	assert.Equal(t, len(errorMessage), errResult().UnwrapOrElse(byLength))
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, e, ok := okResult().Get()
	assert.True(t, ok)
	assert.Equal(t, okValue, v)
	assert.Empty(t, e)

	v, e, ok = errResult().Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, errorMessage, e)
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[string, string]("84"), Map(okResult(), func(v int) string { return strconv.Itoa(v * 2) }))

	called := false
	mapped := Map(errResult(), func(v int) int {
		called = true
		return v
	})
	assert.Equal(t, errResult(), mapped)
	assert.False(t, called)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Err[int](strings.ToUpper(errorMessage)), MapErr(errResult(), strings.ToUpper))

	called := false
	mapped := MapErr(okResult(), func(e string) error {
		called = true
		return errors.New(e)
	})
	assert.Equal(t, Ok[int, error](okValue), mapped)
	assert.False(t, called)
}

func TestMapOr(t *testing.T) {
	t.Parallel()
	double := func(v int) int { return v * 2 }

	assert.Equal(t, okValue*2, MapOr(okResult(), -1, double))
	assert.Equal(t, -1, MapOr(errResult(), -1, double))
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()
	double := func(v int) int { return v * 2 }
	byLength := func(e string) int { return len(e) }

	assert.Equal(t, okValue*2, MapOrElse(okResult(), byLength, double))
	assert.Equal(t, len(errorMessage), MapOrElse(errResult(), byLength, double))
}

func TestAndThen(t *testing.T) {
	t.Parallel()
	parse := func(s string) Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int]("not a number: " + s)
		}
		return Ok[int, string](n)
	}

	assert.Equal(t, Ok[int, string](12), AndThen(Ok[string, string]("12"), parse))
	assert.Equal(t, Err[int]("not a number: x"), AndThen(Ok[string, string]("x"), parse))
	assert.Equal(t, Err[int]("earlier"), AndThen(Err[string]("earlier"), parse))
}

func TestAndThen_LeftIdentity(t *testing.T) {
	t.Parallel()

	for _, r := range []Result[int, string]{okResult(), errResult()} {
		assert.Equal(t, r, AndThen(r, Ok[int, string]))
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	recoverLength := func(e string) Result[int, error] { return Ok[int, error](len(e)) }

	assert.Equal(t, Ok[int, error](len(errorMessage)), OrElse(errResult(), recoverLength))

	called := false
	assert.Equal(t, Ok[int, error](okValue), OrElse(okResult(), func(e string) Result[int, error] {
		called = true
		return Err[int](errors.New(e))
	}))
	assert.False(t, called)
}

func TestOkErrConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, okValue, okResult().Ok().Unwrap())
	assert.False(t, okResult().Err().IsSome())
	assert.Equal(t, errorMessage, errResult().Err().Unwrap())
	assert.False(t, errResult().Ok().IsSome())
}

func TestInspect(t *testing.T) {
	t.Parallel()
	var (
		values []int
		errs   []string
	)

	for _, r := range []Result[int, string]{okResult(), errResult()} {
		out := r.Inspect(func(v int) { values = append(values, v) }).
			InspectErr(func(e string) { errs = append(errs, e) })
		assert.Equal(t, r, out)
	}

	assert.Equal(t, []int{okValue}, values)
	assert.Equal(t, []string{errorMessage}, errs)
}

type closeErr struct{}

func (*closeErr) Error() string { return "close" }

func TestFrom(t *testing.T) {
	t.Parallel()

	v, err := strconv.Atoi("7")
	assert.Equal(t, 7, From(v, err).Unwrap())

	v, err = strconv.Atoi("seven")
	bad := From(v, err)
	require.True(t, bad.IsErr())
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.UnwrapErr(), &numErr)

	var typedNil *closeErr
	assert.True(t, From("ok", error(typedNil)).IsOk())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(42)", okResult().String())
	assert.Equal(t, "Err("+errorMessage+")", errResult().String())
}
