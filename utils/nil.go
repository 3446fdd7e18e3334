// Package utils holds small helpers shared across packages.
package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish reports whether val is nil or a nil-able kind holding nil, such
// as a nil pointer stored in an interface.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
