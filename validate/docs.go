// Package validate runs self-validation on values that implement HasValidate or
// HasValidateWithContext. The typecheck package uses it to reject malformed
// signatures before wrapping a function.
package validate
