package typecheck

import (
	"github.com/amp-labs/typecheck/envutil"
	"github.com/amp-labs/typecheck/lazy"
	"github.com/amp-labs/typecheck/typedesc"
)

const (
	EnvEnabled         = "TYPECHECK_ENABLED"
	EnvCacheSignatures = "TYPECHECK_CACHE_SIGNATURES"
	EnvLogMismatches   = "TYPECHECK_LOG_MISMATCHES"
)

// Config switches validator behavior. The zero value disables checking;
// start from DefaultConfig or LoadConfig instead.
type Config struct {
	// Enabled turns checking on. When off, wrapped functions call straight through.
	Enabled bool

	// CacheSignatures keeps resolved signatures until the registry changes.
	CacheSignatures bool

	// LogMismatches logs every violation at debug level.
	LogMismatches bool
}

// DefaultConfig checks every call and caches resolved signatures.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		CacheSignatures: true,
	}
}

// LoadConfig reads the configuration from the environment. Unset or
// unparsable variables fall back to DefaultConfig.
func LoadConfig() Config {
	dfl := DefaultConfig()

	return Config{
		Enabled: envutil.Bool(EnvEnabled,
			envutil.Default(dfl.Enabled)).ValueOrElse(dfl.Enabled),
		CacheSignatures: envutil.Bool(EnvCacheSignatures,
			envutil.Default(dfl.CacheSignatures)).ValueOrElse(dfl.CacheSignatures),
		LogMismatches: envutil.Bool(EnvLogMismatches,
			envutil.Default(dfl.LogMismatches)).ValueOrElse(dfl.LogMismatches),
	}
}

// processConfig is read from the environment once, on first use.
var processConfig = lazy.New(LoadConfig) //nolint:gochecknoglobals

// Option customizes a validator.
type Option func(*options)

type options struct {
	config   Config
	registry *typedesc.Registry
	name     string
}

func newOptions(opts []Option) options {
	o := options{config: processConfig.Get()}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

func WithEnabled(enabled bool) Option {
	return func(o *options) {
		o.config.Enabled = enabled
	}
}

func WithCache(enabled bool) Option {
	return func(o *options) {
		o.config.CacheSignatures = enabled
	}
}

func WithLogMismatches(enabled bool) Option {
	return func(o *options) {
		o.config.LogMismatches = enabled
	}
}

// WithRegistry resolves forward references against reg. Without it a
// signature may not contain references.
func WithRegistry(reg *typedesc.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithName overrides the name used in errors, logs, metrics and spans.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
