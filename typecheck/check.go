package typecheck

import (
	"context"

	"github.com/amp-labs/typecheck/contexts"
)

// Checker validates arguments and results against one signature without
// calling anything. The resolved signature is cached per registry
// generation, and a Checker is safe for concurrent use.
type Checker struct {
	v *validator
}

// NewChecker validates sig and returns a Checker for it.
func NewChecker(sig Signature, opts ...Option) (*Checker, error) {
	v, err := newValidator(sig, opts)
	if err != nil {
		return nil, err
	}

	return &Checker{v: v}, nil
}

// Check validates args. It returns nil when checking is disabled.
func (c *Checker) Check(ctx context.Context, args Args) error {
	return c.check(ctx, outcomeParameterMismatch, func(ctx context.Context, sig Signature) error {
		return c.v.checkArgs(ctx, sig, args)
	})
}

// CheckReturn validates a result against the return type. A signature
// without a return type accepts every result.
func (c *Checker) CheckReturn(ctx context.Context, result any) error {
	return c.check(ctx, outcomeReturnMismatch, func(ctx context.Context, sig Signature) error {
		return c.v.checkResult(ctx, sig, result)
	})
}

func (c *Checker) check(ctx context.Context, mismatch string, fn func(context.Context, Signature) error) error {
	ctx = contexts.EnsureContext(ctx)

	if !c.v.active(ctx) {
		recordCall(c.v.name, outcomeSkipped)

		return nil
	}

	sig, err := c.v.resolved(ctx)
	if err != nil {
		recordCall(c.v.name, outcomeResolveError)

		return err
	}

	if err := fn(ctx, sig); err != nil {
		recordCall(c.v.name, mismatch)

		return err
	}

	recordCall(c.v.name, outcomeOK)

	return nil
}

// Check validates args against sig without calling anything. It builds a
// new Checker on every call, so nothing is cached between calls; use
// NewChecker to check the same signature repeatedly.
func Check(ctx context.Context, sig Signature, args Args, opts ...Option) error {
	c, err := NewChecker(sig, opts...)
	if err != nil {
		return err
	}

	return c.Check(ctx, args)
}

// CheckReturn validates a result against the return type of sig. Like
// Check, it is one-shot.
func CheckReturn(ctx context.Context, sig Signature, result any, opts ...Option) error {
	c, err := NewChecker(sig, opts...)
	if err != nil {
		return err
	}

	return c.CheckReturn(ctx, result)
}
