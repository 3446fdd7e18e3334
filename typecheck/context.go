package typecheck

import (
	"context"

	"github.com/amp-labs/typecheck/contexts"
)

type contextKey string

const skipChecksKey contextKey = "skipChecks"

// WithSkipChecks turns checking off (or back on) for every validated call
// made with the returned context.
func WithSkipChecks(ctx context.Context, skip bool) context.Context {
	return contexts.WithValue[contextKey, bool](ctx, skipChecksKey, skip)
}

func skipChecks(ctx context.Context) bool {
	skip, _ := contexts.GetValue[contextKey, bool](ctx, skipChecksKey)

	return skip
}
