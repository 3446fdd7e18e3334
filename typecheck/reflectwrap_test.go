package typecheck

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tcerrors "github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/tests"
	"github.com/amp-labs/typecheck/typedesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapFunc_Greet(t *testing.T) {
	t.Parallel()

	greet := func(name any, age any) string {
		return fmt.Sprintf("%v is %v", name, age)
	}

	wrapped, err := WrapFunc(greet, greetSignature(), testOptions(t)...)
	require.NoError(t, err)

	assert.Equal(t, "John is 1", wrapped("John", 1))

	assert.PanicsWithError(t,
		"positional argument #1 (age) of type float64 does not match required type int",
		func() { wrapped("str", 1.2) })
}

func TestWrapFunc_ErrorResult(t *testing.T) {
	t.Parallel()

	ctx := tests.Context(t)
	calls := 0

	lookup := func(ctx context.Context, key any) (any, error) {
		calls++

		if key == "missing" {
			return nil, errNotFound
		}

		return strings.ToUpper(key.(string)), nil //nolint:forcetypeassert
	}

	wrapped, err := WrapFunc(lookup, Signature{
		Name:   "lookup",
		Params: []Param{{Name: "key", Type: typedesc.String()}},
		Return: typedesc.String(),
	}, testOptions(t)...)
	require.NoError(t, err)

	got, err := wrapped(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	got, err = wrapped(ctx, 12)
	require.ErrorIs(t, err, tcerrors.ErrParameterMismatch)
	assert.Nil(t, got)
	assert.Equal(t, 1, calls)

	_, err = wrapped(ctx, "missing")
	assert.Same(t, errNotFound, err) //nolint:testifylint
	assert.Equal(t, 2, calls)
}

func TestWrapFunc_ReturnMismatch(t *testing.T) {
	t.Parallel()

	count := func(s string) (any, error) {
		return len(s), nil
	}

	wrapped, err := WrapFunc(count, Signature{
		Name:   "count",
		Params: []Param{{Name: "s"}},
		Return: typedesc.String(),
	}, testOptions(t)...)
	require.NoError(t, err)

	got, err := wrapped("abc")
	require.ErrorIs(t, err, tcerrors.ErrReturnMismatch)
	assert.Nil(t, got)
}

func TestWrapFunc_Variadic(t *testing.T) {
	t.Parallel()

	join := func(ctx context.Context, sep any, parts ...any) string {
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = fmt.Sprint(p)
		}

		return strings.Join(out, sep.(string)) //nolint:forcetypeassert
	}

	wrapped, err := WrapFunc(join, Signature{
		Name:   "join",
		Params: []Param{{Name: "sep", Type: typedesc.String()}},
		Return: typedesc.String(),
	}, testOptions(t)...)
	require.NoError(t, err)

	// Variadic elements are not checked.
	assert.Equal(t, "a-1-2.5", wrapped(tests.Context(t), "-", "a", 1, 2.5))
	assert.Empty(t, wrapped(nil, ",")) //nolint:staticcheck

	assert.Panics(t, func() { wrapped(tests.Context(t), 1, "a") })
}

func TestWrapFunc_InvalidDefinitions(t *testing.T) {
	t.Parallel()

	_, err := WrapFunc("not a function", Signature{})
	require.ErrorIs(t, err, tcerrors.ErrInvalidSignature)

	var nilFunc func(int) int

	_, err = WrapFunc(nilFunc, Signature{})
	require.ErrorIs(t, err, tcerrors.ErrInvalidSignature)

	_, err = WrapFunc(func(context.Context, int, ...int) {}, Signature{
		Params: []Param{{Name: "a"}, {Name: "b"}},
	})
	require.ErrorIs(t, err, tcerrors.ErrInvalidSignature)
	assert.Contains(t, err.Error(), "2 parameters declared")

	_, err = WrapFunc(func() error { return nil }, Signature{Return: typedesc.Int()})
	require.ErrorIs(t, err, tcerrors.ErrInvalidSignature)

	assert.Panics(t, func() { MustWrapFunc(42, Signature{}) })
}

func TestWrapFunc_Disabled(t *testing.T) {
	t.Parallel()

	double := func(n any) any { return n }

	wrapped := MustWrapFunc(double, Signature{
		Name:   "double",
		Params: []Param{{Name: "n", Type: typedesc.Int()}},
		Return: typedesc.Int(),
	}, testOptions(t, WithEnabled(false))...)

	assert.Equal(t, "x", wrapped("x"))
}
