package spans

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/typecheck/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type runner struct {
	spanName string
	failure  string
	spanKind trace.SpanKind
	tracer   trace.Tracer

	sso      []trace.SpanStartOption
	decorate []func(span trace.Span)
}

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindInternal,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// Run calls work inside a span named name. Without a tracer in the context
// work runs directly with whatever span the context already carries.
// The value and error from work are returned as-is, together; an error
// marks the span as failed. A panic is recorded on the span and re-raised.
func Run[T any](
	ctx context.Context, name string,
	work func(ctx context.Context, span trace.Span) (T, error), opts ...Option,
) (T, error) {
	tracer, found := TracerFromContext(ctx)
	if !found {
		spanWithoutTracerCounter.WithLabelValues(name).Inc()

		return work(ctx, trace.SpanFromContext(ctx))
	}

	return runWithSpan(ctx, newRunner(tracer, name, opts...), work)
}

func runWithSpan[T any](
	ctx context.Context, r *runner,
	work func(ctx context.Context, span trace.Span) (T, error),
) (valOut T, errOut error) {
	opts := make([]trace.SpanStartOption, len(r.sso)+1)

	copy(opts, r.sso)
	opts[len(r.sso)] = trace.WithSpanKind(r.spanKind)

	ctx, span := r.tracer.Start(ctx, r.spanName, opts...)

	defer func() {
		defer span.End()

		if panicErr := recover(); panicErr != nil {
			span.SetAttributes(attribute.Bool("panic", true))

			err := utils.GetPanicRecoveryError(panicErr, debug.Stack())
			if errOut != nil {
				err = errors.Join(errOut, err)
			}

			r.setErrorStatus(span, err)

			panic(panicErr)
		}
	}()

	if span.IsRecording() {
		for _, decorate := range r.decorate {
			if decorate != nil {
				decorate(span)
			}
		}
	}

	val, err := work(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}

	return val, err
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}
