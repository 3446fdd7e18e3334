package typedesc

import (
	"hash"
	"reflect"

	"github.com/amp-labs/typecheck/assert"
)

// Container matches on the container type alone. Element parameters are
// kept for display but are not checked: a List[string] accepts a slice of
// mixed values. This is a known limitation, not a guarantee.
type Container struct {
	name   string
	kind   reflect.Kind
	typ    reflect.Type
	params []Descriptor
}

// List describes any slice. Tuples are not lists, so tuple.Values is rejected.
func List(params ...Descriptor) *Container {
	return &Container{name: "List", kind: reflect.Slice, params: withoutNils(params)}
}

// Map describes any map.
func Map(params ...Descriptor) *Container {
	return &Container{name: "Map", kind: reflect.Map, params: withoutNils(params)}
}

// ContainerOf describes values assignable to t, with unchecked parameters.
// It panics if t is nil.
func ContainerOf(t reflect.Type, params ...Descriptor) *Container {
	assert.NotNil(t, "typedesc: ContainerOf called with a nil type")

	return &Container{name: t.String(), typ: t, params: withoutNils(params)}
}

// Params returns the declared, unchecked element parameters.
func (c *Container) Params() []Descriptor {
	return append([]Descriptor(nil), c.params...)
}

func (c *Container) Kind() Kind {
	return KindContainer
}

func (c *Container) String() string {
	if len(c.params) == 0 {
		return c.name
	}

	return c.name + "[" + joinStrings(c.params, ", ") + "]"
}

func (c *Container) canonical() string {
	origin := c.kind.String()
	if c.typ != nil {
		origin = qualifiedName(c.typ)
	}

	return "container:" + origin + "(" + joinCanonical(c.params) + ")"
}

func (c *Container) UpdateHash(h hash.Hash) error {
	return writeCanonical(h, c)
}

func (c *Container) match(value any) bool {
	if value == nil {
		return false
	}

	t := reflect.TypeOf(value)

	if c.typ != nil {
		return t.AssignableTo(c.typ)
	}

	if t.Kind() != c.kind {
		return false
	}

	return c.kind != reflect.Slice || !t.Implements(tupleType)
}
