package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/amp-labs/typecheck/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := Context(t)

	info, ok := GetTestInfo(ctx)
	require.True(t, ok)
	assert.Equal(t, t.Name(), info.Name)
	assert.Same(t, t, info.Test)
	assert.True(t, strings.HasPrefix(info.Id, "test-"))

	other, _ := GetTestId(Context(t))
	assert.NotEqual(t, info.Id, other)

	// The logger writes through t.Log; this must not panic.
	logger.Get(ctx).Info("hello from the test logger")
}

func TestGetTestInfo_Empty(t *testing.T) {
	t.Parallel()

	_, ok := GetTestInfo(context.Background())
	assert.False(t, ok)
}

func TestCheckSkipped(t *testing.T) { //nolint:paralleltest
	t.Setenv("TYPECHECK_TEST_SKIP", "false")

	ran := false

	t.Run("not skipped", func(t *testing.T) {
		CheckSkipped(t, "TYPECHECK_TEST_SKIP")

		ran = true
	})

	assert.True(t, ran)

	t.Run("inverted", func(t *testing.T) {
		CheckSkipped(t, "TYPECHECK_TEST_SKIP", false, true)
		t.Error("should have been skipped")
	})
}
