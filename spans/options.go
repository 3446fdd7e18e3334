package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a single Run.
type Option func(*runner)

// WithAttribute adds an attribute to the span when it starts.
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind overrides the span kind. Spans are internal by default.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithErrorMessage prefixes the span status description on failure.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

// WithSpanDecorator runs f against the span before the work starts, but
// only when the span is recording. Use it for attributes that are costly
// to compute.
func WithSpanDecorator(f func(span trace.Span)) Option {
	return func(r *runner) {
		r.decorate = append(r.decorate, f)
	}
}
