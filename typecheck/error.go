package typecheck

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/typedesc"
)

// Cause tells a parameter violation from a return violation.
type Cause int

const (
	CauseParameter Cause = iota + 1
	CauseReturn
)

func (c Cause) String() string {
	switch c {
	case CauseParameter:
		return "parameter"
	case CauseReturn:
		return "return"
	default:
		return fmt.Sprintf("Cause(%d)", int(c))
	}
}

// Error is a type contract violation for a single call.
type Error struct {
	Cause Cause

	// Function is the validator name, usually Signature.Name.
	Function string

	// Position is the zero-based index of a positional argument. It is -1
	// for keyword arguments and returned values.
	Position int

	// Name is the parameter name. Empty for returned values.
	Name string

	// Keyword is set when the argument was passed by name.
	Keyword bool

	// Actual is the runtime type of the offending value, "nil" for nil.
	Actual string

	Expected typedesc.Descriptor
}

func (e *Error) Error() string {
	switch {
	case e.Cause == CauseReturn:
		return fmt.Sprintf("returned value of type %s does not match required type %s", e.Actual, e.Expected)
	case e.Keyword:
		return fmt.Sprintf("keyword argument %s of type %s does not match required type %s",
			e.Name, e.Actual, e.Expected)
	default:
		return fmt.Sprintf("positional argument #%d (%s) of type %s does not match required type %s",
			e.Position, e.Name, e.Actual, e.Expected)
	}
}

// Is matches errors.ErrTypeCheck and the sentinel for the cause.
func (e *Error) Is(target error) bool {
	switch target { //nolint:errorlint
	case errors.ErrTypeCheck:
		return true
	case errors.ErrParameterMismatch:
		return e.Cause == CauseParameter
	case errors.ErrReturnMismatch:
		return e.Cause == CauseReturn
	default:
		return false
	}
}

func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("cause", e.Cause.String()),
		slog.String("function", e.Function),
		slog.String("actual", e.Actual),
		slog.String("expected", descriptorString(e.Expected)),
	}

	if e.Cause == CauseParameter {
		attrs = append(attrs, slog.String("param", e.Name))

		if !e.Keyword {
			attrs = append(attrs, slog.Int("position", e.Position))
		}
	}

	return slog.GroupValue(attrs...)
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", value)
}

func descriptorString(d typedesc.Descriptor) string {
	if d == nil {
		return "any"
	}

	return d.String()
}
