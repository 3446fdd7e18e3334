package typecheck

import (
	"context"
	"fmt"

	"github.com/amp-labs/typecheck/errors"
)

// Func is a callable with a dynamic calling convention.
type Func func(ctx context.Context, args Args) (any, error)

// Wrap returns a Func with the same calling convention as fn that enforces
// sig on every call. It fails if fn is nil or sig is malformed; forward
// references are only resolved when calls are made.
//
// The wrapped function receives ctx and args exactly as given. If it
// returns an error, that error and its result are returned unchanged and
// the result is not checked.
func Wrap(fn Func, sig Signature, opts ...Option) (Func, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", errors.ErrInvalidSignature)
	}

	v, err := newValidator(sig, opts)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, args Args) (any, error) {
		return v.run(ctx, args, func() (any, error) {
			return fn(ctx, args)
		})
	}, nil
}

// MustWrap is Wrap for package-level declarations; it panics on error.
func MustWrap(fn Func, sig Signature, opts ...Option) Func {
	wrapped, err := Wrap(fn, sig, opts...)
	if err != nil {
		panic(err)
	}

	return wrapped
}
