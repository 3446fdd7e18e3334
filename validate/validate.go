package validate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/amp-labs/typecheck/contexts"
	"github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/logger"
	"github.com/amp-labs/typecheck/utils"
)

// HasValidate is implemented by types that can validate themselves without a context.
type HasValidate interface {
	// Validate returns an error if the value is invalid. It must be idempotent.
	Validate() error
}

// HasValidateWithContext is implemented by types whose validation needs a context.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate runs the value's own validation, if it has any. Failures are
// wrapped with errors.ErrValidation; panics inside Validate are recovered
// and reported as failures. Nil values and types without a Validate method pass.
func Validate(ctx context.Context, value any) error {
	//nolint:contextcheck // EnsureContext preserves context inheritance
	err := validateInternal(contexts.EnsureContext(ctx), value)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

func validateInternal(ctx context.Context, value any) (err error) {
	if utils.IsNilish(value) {
		validationsTotal.WithLabelValues("false", "false").Inc()

		return nil
	}

	var run func() error

	switch v := value.(type) {
	case HasValidate:
		run = v.Validate
	case HasValidateWithContext:
		run = func() error { return v.Validate(ctx) }
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))
		validationsTotal.WithLabelValues("false", "false").Inc()

		return nil
	}

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during validation: %v", r) //nolint:err113
		}

		hasError := strconv.FormatBool(err != nil)

		validationsTotal.WithLabelValues("true", hasError).Inc()
		validationTime.WithLabelValues(fmt.Sprintf("%T", value), hasError).
			Observe(float64(time.Since(start).Microseconds()) / 1000) //nolint:mnd
	}()

	return run()
}
