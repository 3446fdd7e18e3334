package typecheck

import (
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/hashing"
	"github.com/amp-labs/typecheck/typedesc"
)

// Param is a named parameter. A nil Type means the parameter has no declared
// type and is never checked.
type Param struct {
	Name string
	Type typedesc.Descriptor
}

// Signature is the declared type contract of a callable. Params are in
// declaration order. A nil Return means the result is not checked.
//
// Descriptors may contain typedesc.Ref forward references; they are resolved
// against the validator's registry when a call is checked.
type Signature struct {
	Name   string
	Params []Param
	Return typedesc.Descriptor
}

// Validate reports every definition problem at once: unnamed parameters
// and names declared twice.
func (s Signature) Validate() error {
	var errs errors.Collection

	seen := make(map[string]struct{}, len(s.Params))

	for i, p := range s.Params {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			errs.Add(fmt.Errorf("%w: parameter #%d has no name", errors.ErrInvalidSignature, i))

			continue
		}

		if _, dup := seen[name]; dup {
			errs.Add(fmt.Errorf("%w: parameter %q is declared more than once", errors.ErrInvalidSignature, name))
		}

		seen[name] = struct{}{}
	}

	return errs.GetError()
}

// String renders the signature as name(param type, ...) -> return.
func (s Signature) String() string {
	var sb strings.Builder

	sb.WriteString(s.displayName())
	sb.WriteByte('(')

	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(p.Name)

		if p.Type != nil {
			sb.WriteByte(' ')
			sb.WriteString(p.Type.String())
		}
	}

	sb.WriteByte(')')

	if s.Return != nil {
		sb.WriteString(" -> ")
		sb.WriteString(s.Return.String())
	}

	return sb.String()
}

// UpdateHash feeds the whole contract into h. Two signatures that check the
// same things hash the same.
func (s Signature) UpdateHash(h hash.Hash) error {
	parts := hashing.Sequence{hashing.HashableString(s.Name)}

	for _, p := range s.Params {
		parts = append(parts, hashing.HashableString(p.Name), hashableDescriptor(p.Type))
	}

	parts = append(parts, hashing.HashableString("->"), hashableDescriptor(s.Return))

	return parts.UpdateHash(h)
}

// Param returns the declared parameter with the given name.
func (s Signature) Param(name string) (Param, bool) {
	idx := slices.IndexFunc(s.Params, func(p Param) bool { return p.Name == name })
	if idx < 0 {
		return Param{}, false
	}

	return s.Params[idx], true
}

// Resolve returns a copy with every forward reference replaced using reg.
func (s Signature) Resolve(reg *typedesc.Registry) (Signature, error) {
	out := Signature{
		Name:   s.Name,
		Params: make([]Param, len(s.Params)),
	}

	for i, p := range s.Params {
		resolved, err := reg.Resolve(p.Type)
		if err != nil {
			return Signature{}, fmt.Errorf("resolving parameter %s of %s: %w", p.Name, s.displayName(), err)
		}

		out.Params[i] = Param{Name: p.Name, Type: resolved}
	}

	ret, err := reg.Resolve(s.Return)
	if err != nil {
		return Signature{}, fmt.Errorf("resolving return type of %s: %w", s.displayName(), err)
	}

	out.Return = ret

	return out, nil
}

func (s Signature) clone() Signature {
	s.Params = slices.Clone(s.Params)

	return s
}

func (s Signature) displayName() string {
	if s.Name == "" {
		return "anonymous"
	}

	return s.Name
}

type paramView struct {
	Name string `json:"name"           yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

type signatureView struct {
	Name   string      `json:"name"             yaml:"name"`
	Params []paramView `json:"params,omitempty" yaml:"params,omitempty"`
	Return string      `json:"return,omitempty" yaml:"return,omitempty"`
}

// describe is the shape used when a signature is written to debug logs.
func (s Signature) describe() signatureView {
	view := signatureView{Name: s.displayName()}

	for _, p := range s.Params {
		pv := paramView{Name: p.Name}
		if p.Type != nil {
			pv.Type = p.Type.String()
		}

		view.Params = append(view.Params, pv)
	}

	if s.Return != nil {
		view.Return = s.Return.String()
	}

	return view
}

func hashableDescriptor(d typedesc.Descriptor) hashing.Hashable {
	if d == nil {
		return hashing.HashableString("<untyped>")
	}

	return d
}
