// Package spans runs a unit of work inside an OpenTelemetry span when a
// tracer has been stored in the context, and runs it bare otherwise.
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("checkout"))
//
//	total, err := spans.Run(ctx, "checkout.total", func(ctx context.Context, span trace.Span) (int, error) {
//	    return computeTotal(ctx)
//	}, spans.WithAttribute("cart.size", attribute.IntValue(len(cart))))
package spans

import (
	"context"

	"github.com/amp-labs/typecheck/contexts"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

// TracerKey is the context key holding the active tracer.
const TracerKey contextKey = "tracer"

// WithTracer stores a tracer in the context. Run starts spans with it.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return contexts.WithValue[contextKey, trace.Tracer](ctx, TracerKey, tracer)
}

// TracerFromContext returns the tracer stored by WithTracer, if any.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	tracer, ok := contexts.GetValue[contextKey, trace.Tracer](ctx, TracerKey)
	if !ok || tracer == nil {
		return nil, false
	}

	return tracer, true
}
