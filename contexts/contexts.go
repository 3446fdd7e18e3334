// Package contexts provides typed helpers around context.Context values.
package contexts

import "context"

// EnsureContext returns the first non-nil context, or context.Background()
// when every candidate is nil.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue stores value under key. A nil ctx is replaced with context.Background().
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	return context.WithValue(EnsureContext(ctx), key, value)
}

// GetValue reads the value stored under key. It reports false if ctx is nil,
// nothing is stored, or the stored value is not a V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}
