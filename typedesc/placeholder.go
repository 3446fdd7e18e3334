package typedesc

import "hash"

// Placeholder is a type variable. Without constraints it admits every value,
// nil included. With constraints it admits a value that matches at least one
// of them.
type Placeholder struct {
	name        string
	constraints []Descriptor
}

// TypeVar declares a type variable. TypeVar("T") is unconstrained;
// TypeVar("T", Int(), String()) admits ints and strings only.
func TypeVar(name string, constraints ...Descriptor) *Placeholder {
	return &Placeholder{
		name:        name,
		constraints: withoutNils(constraints),
	}
}

// Name returns the variable name.
func (p *Placeholder) Name() string {
	return p.name
}

// Constraints returns the alternatives, empty when unconstrained.
func (p *Placeholder) Constraints() []Descriptor {
	return append([]Descriptor(nil), p.constraints...)
}

// Constrained reports whether the variable is limited to alternatives.
func (p *Placeholder) Constrained() bool {
	return len(p.constraints) > 0
}

func (p *Placeholder) Kind() Kind {
	return KindPlaceholder
}

func (p *Placeholder) String() string {
	if !p.Constrained() {
		return "~" + p.name
	}

	return "~" + p.name + "(" + joinStrings(p.constraints, " | ") + ")"
}

func (p *Placeholder) canonical() string {
	return "typevar:" + p.name + "(" + joinCanonical(p.constraints) + ")"
}

func (p *Placeholder) UpdateHash(h hash.Hash) error {
	return writeCanonical(h, p)
}
