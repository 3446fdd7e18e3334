package typedesc

import "hash"

// Reference names a descriptor registered elsewhere. It lets a declaration
// mention a type before it is defined. References must be resolved with
// Registry.Resolve before matching; an unresolved reference matches nothing.
type Reference struct {
	name string
}

// Ref builds a forward reference to a registered alias.
func Ref(name string) *Reference {
	return &Reference{name: name}
}

// Name returns the alias name.
func (r *Reference) Name() string {
	return r.name
}

func (r *Reference) Kind() Kind {
	return KindReference
}

func (r *Reference) String() string {
	return "'" + r.name + "'"
}

func (r *Reference) canonical() string {
	return "ref:" + r.name
}

func (r *Reference) UpdateHash(h hash.Hash) error {
	return writeCanonical(h, r)
}
