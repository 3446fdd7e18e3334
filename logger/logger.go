// Package logger configures slog for the process and hands out loggers that
// carry request-scoped attributes stored in a context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/amp-labs/typecheck/contexts"
	"github.com/amp-labs/typecheck/envutil"
	"github.com/amp-labs/typecheck/lazy"
	"go.uber.org/atomic"
)

// Default subsystem name, set by ConfigureLogging.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which swaps global state.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	loggerKey    contextKey = "logger"
	mutedKey     contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
)

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// Option is a functional option for ConfigureLogging.
type Option func(*Options)

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog
// default and redirects the legacy log package into it.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// ConfigureLogging reads LOG_JSON, LOG_LEVEL, LEGACY_LOG_LEVEL and LOG_OUTPUT
// and configures logging for app.
func ConfigureLogging(app string, opts ...Option) (*slog.Logger, error) {
	output, err := envutil.Map(envutil.String("LOG_OUTPUT", envutil.Default("stdout")),
		func(outName string) (io.Writer, error) {
			switch outName {
			case "stdout":
				return os.Stdout, nil
			case "stderr":
				return os.Stderr, nil
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
			}
		}).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        envutil.Bool("LOG_JSON", envutil.Default(false)).ValueOrElse(false),
		MinLevel:    envutil.SlogLevel("LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrElse(slog.LevelInfo),
		LegacyLevel: envutil.SlogLevel("LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrElse(slog.LevelInfo),
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithLogger stores a base logger in the context. Get prefers it over
// slog.Default(), which lets tests route output to t.Log.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return contexts.WithValue[contextKey, *slog.Logger](ctx, loggerKey, logger)
}

// WithMuted suppresses every log line produced through this context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue[contextKey, bool](ctx, mutedKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, _ := contexts.GetValue[contextKey, bool](ctx, mutedKey)

	return muted
}

// WithSubsystem overrides the default subsystem for this context.
func WithSubsystem(ctx context.Context, name string) context.Context {
	return contexts.WithValue[contextKey, string](ctx, subsystemKey, name)
}

// GetSubsystem returns the context's subsystem, falling back to the one set
// by ConfigureLogging.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := contexts.GetValue[contextKey, string](ctx, subsystemKey); ok {
		return sub
	}

	return subsystem.Load()
}

// With returns a context whose loggers carry the given key-value pairs.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	existing, _ := contexts.GetValue[contextKey, []any](ctx, valuesKey)

	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return contexts.WithValue[contextKey, []any](ctx, valuesKey, vals)
}

// hostname is the pod name in k8s and the machine name locally.
var hostname = lazy.New(func() string { //nolint:gochecknoglobals
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return h
})

// GetPodName returns the pod name (or hostname if not running in k8s).
func GetPodName() string {
	return hostname.Get()
}

type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n *nullHandler) WithGroup(string) slog.Handler             { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger for the first non-nil context, decorated with the
// subsystem, pod name and any values added through With.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := contexts.GetValue[contextKey, *slog.Logger](realCtx, loggerKey)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		"subsystem", GetSubsystem(realCtx),
		"pod", GetPodName())

	if vals, ok := contexts.GetValue[contextKey, []any](realCtx, valuesKey); ok && len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
