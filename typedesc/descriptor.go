// Package typedesc describes what a dynamically-typed value is allowed to be.
//
// A Descriptor is one of a closed set of variants, built once up front and
// never mutated:
//
//   - Concrete: an instance-of check against a Go type (Of, TypeOf, Iterable, Nil).
//   - Placeholder: a type variable, either unconstrained or limited to alternatives (TypeVar).
//   - Disjunction: any one of several descriptors, flattened on construction (Union, Optional).
//   - Sequence: a fixed-arity tuple with per-position descriptors (Tuple).
//   - Container: a container type whose element parameters are not checked (List, Map, ContainerOf).
//   - Reference: a named forward reference, resolved through a Registry (Ref).
//
// Match decides whether a value conforms to a descriptor.
package typedesc

import (
	"fmt"
	"hash"
	"strings"

	"github.com/amp-labs/typecheck/hashing"
)

// Kind identifies a descriptor variant.
type Kind int

const (
	KindConcrete Kind = iota + 1
	KindPlaceholder
	KindDisjunction
	KindSequence
	KindContainer
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindConcrete:
		return "concrete"
	case KindPlaceholder:
		return "placeholder"
	case KindDisjunction:
		return "disjunction"
	case KindSequence:
		return "sequence"
	case KindContainer:
		return "container"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor is an admissibility constraint on runtime values. The set of
// implementations is closed; build descriptors with the constructors in
// this package.
type Descriptor interface {
	fmt.Stringer
	hashing.Hashable

	Kind() Kind

	// canonical is an unambiguous rendering used for hashing and equality.
	canonical() string
}

// Equal reports whether two descriptors describe the same constraint.
func Equal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.canonical() == b.canonical()
}

func writeCanonical(h hash.Hash, d Descriptor) error {
	_, err := h.Write([]byte(d.canonical()))

	return err
}

func joinStrings(ds []Descriptor, sep string) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}

	return strings.Join(parts, sep)
}

func joinCanonical(ds []Descriptor) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.canonical()
	}

	return strings.Join(parts, ",")
}

// withoutNils drops nil descriptors so constructors never store them.
func withoutNils(ds []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(ds))

	for _, d := range ds {
		if d != nil {
			out = append(out, d)
		}
	}

	return out
}
