// Package errors holds the sentinel errors shared by the typecheck packages,
// plus a small accumulator for definition-time problems.
package errors

import "errors"

var (
	// ErrTypeCheck is the single error kind raised when a call violates its type contract.
	ErrTypeCheck = errors.New("type contract violation")

	// ErrParameterMismatch marks a violation caused by an argument.
	ErrParameterMismatch = errors.New("parameter type mismatch")

	// ErrReturnMismatch marks a violation caused by a returned value.
	ErrReturnMismatch = errors.New("return type mismatch")

	ErrInvalidSignature    = errors.New("invalid signature")
	ErrUnresolvedReference = errors.New("unresolved type reference")
	ErrCyclicReference     = errors.New("cyclic type reference")
	ErrDuplicateAlias      = errors.New("duplicate type alias")
	ErrInvalidAlias        = errors.New("invalid type alias")
	ErrValidation          = errors.New("validation failed")
	ErrWrongType           = errors.New("wrong type")
	ErrPanicRecovery       = errors.New("recovered from panic")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Signature checks use it to report every definition problem at once
// instead of stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of everything otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
