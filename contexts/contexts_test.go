package contexts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type contextKey string

func TestEnsureContext(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-nil context", func(t *testing.T) {
		t.Parallel()

		ctx1 := context.WithValue(t.Context(), contextKey("which"), "first")
		ctx2 := t.Context()

		assert.Equal(t, ctx1, EnsureContext(nil, ctx1, ctx2))
	})

	t.Run("returns background when all are nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, context.Background(), EnsureContext(nil, nil)) //nolint:usetesting
		assert.Equal(t, context.Background(), EnsureContext())         //nolint:usetesting
	})
}

func TestWithValueGetValue(t *testing.T) {
	t.Parallel()

	t.Run("round trips a typed value", func(t *testing.T) {
		t.Parallel()

		ctx := WithValue[contextKey, int](t.Context(), "answer", 42)

		got, ok := GetValue[contextKey, int](ctx, "answer")
		assert.True(t, ok)
		assert.Equal(t, 42, got)
	})

	t.Run("wrong type reports missing", func(t *testing.T) {
		t.Parallel()

		ctx := WithValue[contextKey, string](t.Context(), "answer", "forty-two")

		got, ok := GetValue[contextKey, int](ctx, "answer")
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()

		//nolint:staticcheck // nil handling is part of the contract
		ctx := WithValue[contextKey, bool](nil, "flag", true)

		got, ok := GetValue[contextKey, bool](ctx, "flag")
		assert.True(t, ok)
		assert.True(t, got)

		_, ok = GetValue[contextKey, bool](nil, "flag") //nolint:staticcheck
		assert.False(t, ok)
	})
}
