package typedesc

import (
	"hash"

	"github.com/amp-labs/typecheck/hashing"
)

// Disjunction admits a value that matches at least one alternative. The
// alternative set is flat: nested disjunctions are merged and duplicates are
// dropped when the disjunction is built. A disjunction with no alternatives
// admits everything.
type Disjunction struct {
	alternatives []Descriptor
}

// Union builds a flattened disjunction, keeping the first occurrence of each
// distinct alternative. Union(Union(a, b), Union(a, b)) equals Union(a, b).
// A nested disjunction with no alternatives admits everything, so it makes
// the whole union open.
func Union(alternatives ...Descriptor) *Disjunction {
	seen := make(map[uint64]struct{}, len(alternatives))
	flat := make([]Descriptor, 0, len(alternatives))
	open := false

	var add func(d Descriptor)

	add = func(d Descriptor) {
		if nested, ok := d.(*Disjunction); ok {
			if len(nested.alternatives) == 0 {
				open = true

				return
			}

			for _, alt := range nested.alternatives {
				add(alt)
			}

			return
		}

		key, err := hashing.Xxh3(d)
		if err == nil {
			if _, dup := seen[key]; dup {
				return
			}

			seen[key] = struct{}{}
		}

		flat = append(flat, d)
	}

	for _, alt := range withoutNils(alternatives) {
		add(alt)
	}

	if open {
		return &Disjunction{}
	}

	return &Disjunction{alternatives: flat}
}

// Optional admits d or nil.
func Optional(d Descriptor) *Disjunction {
	return Union(d, Nil())
}

// Alternatives returns the flattened alternatives in order.
func (u *Disjunction) Alternatives() []Descriptor {
	return append([]Descriptor(nil), u.alternatives...)
}

func (u *Disjunction) Kind() Kind {
	return KindDisjunction
}

func (u *Disjunction) String() string {
	if len(u.alternatives) == 0 {
		return "Union"
	}

	return "Union[" + joinStrings(u.alternatives, ", ") + "]"
}

func (u *Disjunction) canonical() string {
	return "union(" + joinCanonical(u.alternatives) + ")"
}

func (u *Disjunction) UpdateHash(h hash.Hash) error {
	return writeCanonical(h, u)
}
