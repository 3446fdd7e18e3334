package typedesc

import (
	"hash"
	"reflect"
	"strconv"
	"strings"

	"github.com/amp-labs/typecheck/assert"
	"github.com/amp-labs/typecheck/tuple"
)

var (
	tupleType = reflect.TypeFor[tuple.Tuple]()
	anyType   = reflect.TypeFor[any]()
)

// Concrete matches by instance-of: the value's dynamic type must be
// assignable to the declared type. For interface types that means the value
// implements the interface, which is how structural (protocol) types work.
type Concrete struct {
	name string
	typ  reflect.Type

	// accepts replaces the assignability check for protocol descriptors
	// that are not expressible as a single Go type.
	accepts func(value any) bool
}

// Of describes values of type T. Use an interface type for T to accept any
// implementation.
func Of[T any]() *Concrete {
	return TypeOf(reflect.TypeFor[T]())
}

// TypeOf describes values of the given type. It panics if t is nil.
func TypeOf(t reflect.Type) *Concrete {
	assert.NotNil(t, "typedesc: TypeOf called with a nil type")

	return &Concrete{name: t.String(), typ: t}
}

// String describes Go strings.
func String() *Concrete { return Of[string]() }

// Int describes Go ints. Other integer widths are distinct types; use Of for them.
func Int() *Concrete { return Of[int]() }

// Float describes float64 values.
func Float() *Concrete { return Of[float64]() }

// Bool describes Go bools.
func Bool() *Concrete { return Of[bool]() }

// Nil describes the untyped nil value and nothing else. Combine it with
// Union (or use Optional) to allow a missing value.
func Nil() *Concrete {
	return &Concrete{
		name:    "nil",
		accepts: func(value any) bool { return value == nil },
	}
}

// Iterable accepts anything that can be ranged over: strings, slices, arrays,
// maps, channels, range-over-func iterators, and tuples.
func Iterable() *Concrete {
	return &Concrete{
		name:    "Iterable",
		accepts: isIterable,
	}
}

// Type returns the declared Go type, or nil for protocol descriptors.
func (c *Concrete) Type() reflect.Type {
	return c.typ
}

func (c *Concrete) Kind() Kind {
	return KindConcrete
}

func (c *Concrete) String() string {
	return c.name
}

func (c *Concrete) canonical() string {
	if c.typ == nil {
		return "protocol:" + c.name
	}

	return "concrete:" + qualifiedName(c.typ)
}

func (c *Concrete) UpdateHash(h hash.Hash) error {
	return writeCanonical(h, c)
}

func (c *Concrete) match(value any) bool {
	if c.accepts != nil {
		return c.accepts(value)
	}

	if value == nil {
		// Only the empty interface admits a missing value.
		return c.typ == anyType
	}

	return reflect.TypeOf(value).AssignableTo(c.typ)
}

func isIterable(value any) bool {
	if value == nil {
		return false
	}

	t := reflect.TypeOf(value)

	switch t.Kind() { //nolint:exhaustive
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	case reflect.Func:
		return isRangeFunc(t)
	default:
		return t.Implements(tupleType)
	}
}

// isRangeFunc reports whether t has the shape func(yield func(...) bool).
func isRangeFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}

	yield := t.In(0)

	return yield.Kind() == reflect.Func &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool &&
		yield.NumIn() <= 2
}

// qualifiedName disambiguates types from different packages that share a
// short name, including when they only appear as element, field or
// parameter types of an unnamed composite.
func qualifiedName(t reflect.Type) string {
	var sb strings.Builder

	writeQualified(&sb, t)

	return sb.String()
}

func writeQualified(sb *strings.Builder, t reflect.Type) {
	if t.Name() != "" {
		if t.PkgPath() != "" {
			sb.WriteString(t.PkgPath())
			sb.WriteByte('.')
		}

		sb.WriteString(t.Name())

		return
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		sb.WriteByte('*')
		writeQualified(sb, t.Elem())
	case reflect.Slice:
		sb.WriteString("[]")
		writeQualified(sb, t.Elem())
	case reflect.Array:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(t.Len()))
		sb.WriteByte(']')
		writeQualified(sb, t.Elem())
	case reflect.Map:
		sb.WriteString("map[")
		writeQualified(sb, t.Key())
		sb.WriteByte(']')
		writeQualified(sb, t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			sb.WriteString("<-chan ")
		case reflect.SendDir:
			sb.WriteString("chan<- ")
		case reflect.BothDir:
			sb.WriteString("chan ")
		}

		writeQualified(sb, t.Elem())
	case reflect.Func:
		sb.WriteString("func")
		writeSignature(sb, t)
	case reflect.Struct:
		sb.WriteString("struct {")

		for i := range t.NumField() {
			field := t.Field(i)
			if i > 0 {
				sb.WriteByte(';')
			}

			sb.WriteByte(' ')

			if field.PkgPath != "" {
				sb.WriteString(field.PkgPath)
				sb.WriteByte('.')
			}

			if !field.Anonymous {
				sb.WriteString(field.Name)
				sb.WriteByte(' ')
			}

			writeQualified(sb, field.Type)

			if field.Tag != "" {
				sb.WriteByte(' ')
				sb.WriteString(strconv.Quote(string(field.Tag)))
			}
		}

		sb.WriteString(" }")
	case reflect.Interface:
		sb.WriteString("interface {")

		for i := range t.NumMethod() {
			method := t.Method(i)
			if i > 0 {
				sb.WriteByte(';')
			}

			sb.WriteByte(' ')

			if method.PkgPath != "" {
				sb.WriteString(method.PkgPath)
				sb.WriteByte('.')
			}

			sb.WriteString(method.Name)
			writeSignature(sb, method.Type)
		}

		sb.WriteString(" }")
	default:
		sb.WriteString(t.String())
	}
}

// writeSignature writes the parameter and result lists of a func type.
func writeSignature(sb *strings.Builder, t reflect.Type) {
	sb.WriteByte('(')

	for i := range t.NumIn() {
		if i > 0 {
			sb.WriteString(", ")
		}

		if t.IsVariadic() && i == t.NumIn()-1 {
			sb.WriteString("...")
			writeQualified(sb, t.In(i).Elem())

			continue
		}

		writeQualified(sb, t.In(i))
	}

	sb.WriteByte(')')

	switch t.NumOut() {
	case 0:
	case 1:
		sb.WriteByte(' ')
		writeQualified(sb, t.Out(0))
	default:
		sb.WriteString(" (")

		for i := range t.NumOut() {
			if i > 0 {
				sb.WriteString(", ")
			}

			writeQualified(sb, t.Out(i))
		}

		sb.WriteByte(')')
	}
}
