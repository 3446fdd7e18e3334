package typecheck

import (
	"context"

	"github.com/amp-labs/typecheck/contexts"
	"github.com/amp-labs/typecheck/debug"
	"github.com/amp-labs/typecheck/hashing"
	"github.com/amp-labs/typecheck/logger"
	"github.com/amp-labs/typecheck/spans"
	"github.com/amp-labs/typecheck/typedesc"
	"github.com/amp-labs/typecheck/validate"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// validator holds everything needed to check calls against one signature.
// It is immutable after construction apart from the signature cache.
type validator struct {
	id          uuid.UUID
	name        string
	fingerprint string
	sig         Signature
	config      Config
	registry    *typedesc.Registry
	cache       signatureCache
}

func newValidator(sig Signature, opts []Option) (*validator, error) {
	if err := validate.Validate(contexts.EnsureContext(), sig); err != nil {
		return nil, err
	}

	fingerprint, err := hashing.Sha256(sig)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)

	name := o.name
	if name == "" {
		name = sig.displayName()
	}

	return &validator{
		id:          uuid.New(),
		name:        name,
		fingerprint: fingerprint,
		sig:         sig.clone(),
		config:      o.config,
		registry:    o.registry,
	}, nil
}

func (v *validator) active(ctx context.Context) bool {
	return v.config.Enabled && !skipChecks(ctx)
}

// run performs one checked call: resolve, check arguments, call, check
// the result. An error from call is returned as-is along with its result.
func (v *validator) run(ctx context.Context, args Args, call func() (any, error)) (any, error) {
	if !v.active(ctx) {
		recordCall(v.name, outcomeSkipped)

		return call()
	}

	return spans.Run(ctx, "typecheck."+v.name, func(spanCtx context.Context, _ trace.Span) (any, error) {
		return v.checkedCall(spanCtx, args, call)
	},
		spans.WithAttribute("typecheck.function", attribute.StringValue(v.name)),
		spans.WithAttribute("typecheck.validator_id", attribute.StringValue(v.id.String())),
		spans.WithAttribute("typecheck.signature_hash", attribute.StringValue(v.fingerprint)),
	)
}

func (v *validator) checkedCall(ctx context.Context, args Args, call func() (any, error)) (any, error) {
	sig, err := v.resolved(ctx)
	if err != nil {
		recordCall(v.name, outcomeResolveError)

		return nil, err
	}

	if err := v.checkArgs(ctx, sig, args); err != nil {
		recordCall(v.name, outcomeParameterMismatch)

		return nil, err
	}

	result, err := call()
	if err != nil {
		recordCall(v.name, outcomeCallError)

		return result, err
	}

	if err := v.checkResult(ctx, sig, result); err != nil {
		recordCall(v.name, outcomeReturnMismatch)

		return nil, err
	}

	recordCall(v.name, outcomeOK)

	return result, nil
}

// resolved returns the signature with every forward reference replaced,
// from cache when the registry has not changed since the last call.
func (v *validator) resolved(ctx context.Context) (Signature, error) {
	resolve := func() (Signature, error) {
		sig, err := v.sig.Resolve(v.registry)
		if err != nil {
			return Signature{}, err
		}

		logger.Get(ctx).Debug("resolved type signature",
			"function", v.name,
			"generation", v.registry.Generation(),
			"signature", debug.PrettyYAMLString(sig.describe()))

		return sig, nil
	}

	if !v.config.CacheSignatures {
		recordResolution(false)

		return resolve()
	}

	sig, hit, err := v.cache.get(v.registry.Generation(), resolve)
	recordResolution(hit)

	return sig, err
}

// checkArgs checks positional arguments, then keyword arguments in
// declaration order. The first violation wins.
func (v *validator) checkArgs(ctx context.Context, sig Signature, args Args) error {
	for i, value := range args.Positional {
		if i >= len(sig.Params) {
			break
		}

		p := sig.Params[i]

		if !typedesc.Match(value, p.Type) {
			return v.mismatch(ctx, &Error{
				Cause:    CauseParameter,
				Function: v.name,
				Position: i,
				Name:     p.Name,
				Actual:   typeName(value),
				Expected: p.Type,
			})
		}
	}

	if len(args.Keyword) == 0 {
		return nil
	}

	for _, p := range sig.Params {
		value, ok := args.Keyword[p.Name]
		if !ok {
			continue
		}

		if !typedesc.Match(value, p.Type) {
			return v.mismatch(ctx, &Error{
				Cause:    CauseParameter,
				Function: v.name,
				Position: -1,
				Name:     p.Name,
				Keyword:  true,
				Actual:   typeName(value),
				Expected: p.Type,
			})
		}
	}

	return nil
}

func (v *validator) checkResult(ctx context.Context, sig Signature, result any) error {
	if sig.Return == nil || typedesc.Match(result, sig.Return) {
		return nil
	}

	return v.mismatch(ctx, &Error{
		Cause:    CauseReturn,
		Function: v.name,
		Position: -1,
		Actual:   typeName(result),
		Expected: sig.Return,
	})
}

func (v *validator) mismatch(ctx context.Context, err *Error) error {
	if v.config.LogMismatches {
		logger.Get(ctx).Debug("type contract violation", "violation", err)
	}

	return err
}
