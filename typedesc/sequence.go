package typedesc

import (
	"hash"
	"reflect"

	"github.com/amp-labs/typecheck/tuple"
)

// Sequence is a fixed-arity tuple descriptor. A value conforms when it has
// the tuple capability (a tuple.Tuple or a Go array), its length equals the
// number of element descriptors and every element matches positionally.
// With no element descriptors any tuple conforms, whatever its length.
type Sequence struct {
	elements []Descriptor
}

// Tuple builds a fixed-arity sequence descriptor.
func Tuple(elements ...Descriptor) *Sequence {
	return &Sequence{elements: withoutNils(elements)}
}

// Elements returns the per-position descriptors.
func (s *Sequence) Elements() []Descriptor {
	return append([]Descriptor(nil), s.elements...)
}

func (s *Sequence) Kind() Kind {
	return KindSequence
}

func (s *Sequence) String() string {
	if len(s.elements) == 0 {
		return "Tuple"
	}

	return "Tuple[" + joinStrings(s.elements, ", ") + "]"
}

func (s *Sequence) canonical() string {
	return "tuple(" + joinCanonical(s.elements) + ")"
}

func (s *Sequence) UpdateHash(h hash.Hash) error {
	return writeCanonical(h, s)
}

func (s *Sequence) match(value any) bool {
	members, ok := tupleMembers(value)
	if !ok {
		return false
	}

	if len(s.elements) == 0 {
		return true
	}

	if len(members) != len(s.elements) {
		return false
	}

	for i, elem := range s.elements {
		if !Match(members[i], elem) {
			return false
		}
	}

	return true
}

// tupleMembers extracts the members of a value with the tuple capability.
func tupleMembers(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}

	if t, ok := value.(tuple.Tuple); ok {
		return tuple.Elements(t), true
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Array {
		return nil, false
	}

	members := make([]any, v.Len())
	for i := range members {
		members[i] = v.Index(i).Interface()
	}

	return members, true
}
