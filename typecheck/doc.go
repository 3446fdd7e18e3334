// Package typecheck enforces declared type contracts on calls whose
// arguments are only known at runtime.
//
// A Signature names the parameters of a callable and the typedesc.Descriptor
// each one must satisfy, plus an optional descriptor for the result. Wrap
// turns a Func into one with the same calling convention that, on every
// call, checks positional arguments in declaration order, then keyword
// arguments, runs the original, and finally checks the result:
//
//	greet, err := typecheck.Wrap(greetImpl, typecheck.Signature{
//	    Name: "greet",
//	    Params: []typecheck.Param{
//	        {Name: "name", Type: typedesc.String()},
//	        {Name: "age", Type: typedesc.Int()},
//	    },
//	    Return: typedesc.String(),
//	})
//
//	_, err = greet(ctx, typecheck.NewArgs("str", 1.2))
//	// positional argument #1 (age) of type float64 does not match required type int
//
// WrapFunc does the same for an ordinary Go function value using reflection.
//
// Violations are reported as *Error, which matches errors.ErrTypeCheck and
// either errors.ErrParameterMismatch or errors.ErrReturnMismatch. Errors
// returned by the wrapped function itself pass through untouched.
//
// Arguments beyond the declared parameters, keyword arguments with no
// matching parameter and parameters without a declared type are never
// checked. Element types of containers are not checked either; see
// typedesc.Container.
package typecheck
