// Package assert holds runtime assertions for conditions that indicate a
// programming error rather than bad input.
package assert

import (
	"fmt"

	"github.com/amp-labs/typecheck/errors"
)

// Type asserts that val holds a T. On failure it returns the zero T and an
// error wrapping errors.ErrWrongType.
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

// True panics unless value is true. If the first arg is a string it is used
// as a format string for the remaining args.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// NotNil panics if value is nil.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}
