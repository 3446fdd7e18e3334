package typecheck

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amp-labs/typecheck/assert"
	"github.com/amp-labs/typecheck/errors"
)

var (
	contextType = reflect.TypeFor[context.Context]()
	errorType   = reflect.TypeFor[error]()
)

// funcShape is what WrapFunc needs to know about a function type.
type funcShape struct {
	typ reflect.Type

	// hasContext is set when the first input is a context.Context. It is
	// passed through and not aligned with any parameter.
	hasContext bool

	// fixed counts the inputs that can be declared: not the context and
	// not the variadic tail.
	fixed int

	// resultIndex is the output checked against Return, or -1.
	resultIndex int

	// returnsError is set when the last output is an error.
	returnsError bool
}

func shapeOf(t reflect.Type) funcShape {
	shape := funcShape{typ: t, fixed: t.NumIn(), resultIndex: -1}

	if t.NumIn() > 0 && t.In(0) == contextType {
		shape.hasContext = true
		shape.fixed--
	}

	if t.IsVariadic() {
		shape.fixed--
	}

	outs := t.NumOut()
	if outs > 0 && t.Out(outs-1) == errorType {
		shape.returnsError = true
		outs--
	}

	if outs > 0 {
		shape.resultIndex = 0
	}

	return shape
}

func (s funcShape) check(sig Signature) error {
	if len(sig.Params) > s.fixed {
		return fmt.Errorf("%w: %d parameters declared but %s takes %d",
			errors.ErrInvalidSignature, len(sig.Params), s.typ, s.fixed)
	}

	if sig.Return != nil && s.resultIndex < 0 {
		return fmt.Errorf("%w: return type %s declared but %s returns no value",
			errors.ErrInvalidSignature, sig.Return, s.typ)
	}

	return nil
}

// WrapFunc wraps an ordinary Go function so every call is checked against
// sig. Arguments are positional only. A leading context.Context input is
// passed through and excluded from parameter alignment, and variadic
// elements are never checked. Return is matched against the first result
// that is not the trailing error.
//
// When fn ends in an error result, violations are returned through it with
// every other result zeroed. Otherwise the wrapper panics with the *Error.
// Whatever fn itself returns, error included, is passed back unchanged.
func WrapFunc[F any](fn F, sig Signature, opts ...Option) (F, error) {
	var zero F

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return zero, fmt.Errorf("%w: %T is not a function", errors.ErrInvalidSignature, fn)
	}

	shape := shapeOf(fv.Type())
	if err := shape.check(sig); err != nil {
		return zero, err
	}

	v, err := newValidator(sig, opts)
	if err != nil {
		return zero, err
	}

	wrapped := reflect.MakeFunc(shape.typ, func(in []reflect.Value) []reflect.Value {
		return shape.invoke(v, fv, in)
	})

	return assert.Type[F](wrapped.Interface())
}

// MustWrapFunc is WrapFunc for package-level declarations; it panics on error.
func MustWrapFunc[F any](fn F, sig Signature, opts ...Option) F {
	wrapped, err := WrapFunc(fn, sig, opts...)
	if err != nil {
		panic(err)
	}

	return wrapped
}

func (s funcShape) invoke(v *validator, fv reflect.Value, in []reflect.Value) []reflect.Value {
	ctx := context.Background()
	first := 0

	if s.hasContext {
		if c, ok := in[0].Interface().(context.Context); ok && c != nil {
			ctx = c
		}

		first = 1
	}

	var (
		outs   []reflect.Value
		called bool
	)

	_, err := v.run(ctx, Args{Positional: s.positional(in[first:])}, func() (any, error) {
		called = true

		if s.typ.IsVariadic() {
			outs = fv.CallSlice(in)
		} else {
			outs = fv.Call(in)
		}

		return s.result(outs)
	})

	if called && outs != nil {
		if _, callErr := s.result(outs); callErr != nil {
			return outs
		}
	}

	if err == nil {
		return outs
	}

	if !s.returnsError {
		panic(err)
	}

	return s.failure(err)
}

// positional flattens the inputs, expanding the variadic tail.
func (s funcShape) positional(in []reflect.Value) []any {
	args := make([]any, 0, len(in))

	for i, arg := range in {
		if s.typ.IsVariadic() && i == len(in)-1 {
			for j := range arg.Len() {
				args = append(args, arg.Index(j).Interface())
			}

			continue
		}

		args = append(args, arg.Interface())
	}

	return args
}

func (s funcShape) result(outs []reflect.Value) (any, error) {
	var (
		result any
		err    error
	)

	if s.resultIndex >= 0 {
		result = outs[s.resultIndex].Interface()
	}

	if s.returnsError {
		err, _ = outs[len(outs)-1].Interface().(error)
	}

	return result, err
}

func (s funcShape) failure(err error) []reflect.Value {
	outs := make([]reflect.Value, s.typ.NumOut())

	for i := range outs {
		outs[i] = reflect.Zero(s.typ.Out(i))
	}

	errVal := reflect.New(errorType).Elem()
	errVal.Set(reflect.ValueOf(err))
	outs[len(outs)-1] = errVal

	return outs
}
