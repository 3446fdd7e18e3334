package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"fmt"

	"github.com/amp-labs/typecheck/errors"
)

// GetPanicRecoveryError converts a recovered panic value and optional stack trace
// into a standard error. If the panic value is nil, it returns nil.
// Error values are wrapped so errors.Is still sees them.
func GetPanicRecoveryError(err any, stack []byte) error {
	if err == nil {
		return nil
	}

	format := "%w: %v"
	if _, ok := err.(error); ok {
		format = "%w: %w"
	}

	if stack != nil {
		return fmt.Errorf(format+"\nstack trace:\n%s", errors.ErrPanicRecovery, err, string(stack))
	}

	return fmt.Errorf(format, errors.ErrPanicRecovery, err)
}
