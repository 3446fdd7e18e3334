package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGet_ContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithLogger(t.Context(), captureLogger(&buf))
	ctx = WithSubsystem(ctx, "typecheck")
	ctx = With(ctx, "function", "greet")
	ctx = With(ctx, "attempt", 2)

	Get(ctx).Debug("checked")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "checked", line["msg"])
	assert.Equal(t, "typecheck", line["subsystem"])
	assert.Equal(t, "greet", line["function"])
	assert.InDelta(t, 2, line["attempt"], 0)
	assert.Equal(t, GetPodName(), line["pod"])
}

func TestGet_Muted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithMuted(WithLogger(t.Context(), captureLogger(&buf)), true)

	Get(ctx).Error("nobody hears this")

	assert.Empty(t, buf.String())
}

func TestWith_NoValues(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	assert.Equal(t, ctx, With(ctx))
}

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "configured",
		JSON:      true,
		MinLevel:  slog.LevelInfo,
		Output:    &buf,
	})

	Get().Debug("filtered out")
	Get().Info("kept")

	out := buf.String()
	assert.NotContains(t, out, "filtered out")
	assert.Contains(t, out, `"subsystem":"configured"`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestConfigureLogging_BadOutput(t *testing.T) {
	t.Setenv("LOG_OUTPUT", "syslog")

	_, err := ConfigureLogging("typecheck")
	require.ErrorIs(t, err, ErrInvalidLogOutput)
}
