package typedesc

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"facette.io/natsort"
	"github.com/amp-labs/typecheck/errors"
	"go.uber.org/atomic"
)

// Registry maps alias names to descriptors so that declarations can use
// forward references (Ref) and indirect aliases. Every mutation bumps the
// generation, which callers use to invalidate anything they resolved
// against an older state. A Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	aliases    map[string]Descriptor
	generation atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		aliases: make(map[string]Descriptor),
	}
}

// Register adds a new alias. Registering a name twice is an error; use
// Replace to redefine one.
func (r *Registry) Register(name string, d Descriptor) error {
	if err := checkAlias(name, d); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.aliases[name]; exists {
		return fmt.Errorf("%w: %q", errors.ErrDuplicateAlias, name)
	}

	r.aliases[name] = d
	r.generation.Inc()

	return nil
}

// MustRegister is Register for package-level setup; it panics on error.
func (r *Registry) MustRegister(name string, d Descriptor) {
	if err := r.Register(name, d); err != nil {
		panic(err)
	}
}

// Replace defines or redefines an alias.
func (r *Registry) Replace(name string, d Descriptor) error {
	if err := checkAlias(name, d); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.aliases[name] = d
	r.generation.Inc()

	return nil
}

// Remove deletes an alias and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.aliases[name]; !exists {
		return false
	}

	delete(r.aliases, name)
	r.generation.Inc()

	return true
}

// Lookup returns the descriptor registered under name, unresolved.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.aliases[name]

	return d, ok
}

// Names returns the registered alias names in natural order (T2 before T10).
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	names := make([]string, 0, len(r.aliases))

	for name := range r.aliases {
		names = append(names, name)
	}
	r.mu.RUnlock()

	natsort.Sort(names)

	return names
}

// Generation returns a counter that changes whenever the registry does.
// A nil registry is always at generation zero.
func (r *Registry) Generation() uint64 {
	if r == nil {
		return 0
	}

	return r.generation.Load()
}

// Resolve returns d with every Reference replaced by the descriptor it
// names, recursively. Unknown names fail with errors.ErrUnresolvedReference
// and alias cycles with errors.ErrCyclicReference. Calling Resolve on a nil
// registry succeeds only for descriptors without references.
func (r *Registry) Resolve(d Descriptor) (Descriptor, error) {
	return resolve(d, r.Lookup, nil)
}

func checkAlias(name string, d Descriptor) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", errors.ErrInvalidAlias)
	}

	if d == nil {
		return fmt.Errorf("%w: %q has no descriptor", errors.ErrInvalidAlias, name)
	}

	return nil
}

type lookupFunc func(name string) (Descriptor, bool)

func resolve(d Descriptor, lookup lookupFunc, path []string) (Descriptor, error) { //nolint:cyclop
	switch desc := d.(type) {
	case nil:
		return nil, nil //nolint:nilnil
	case *Reference:
		if slices.Contains(path, desc.name) {
			return nil, fmt.Errorf("%w: %s -> %s",
				errors.ErrCyclicReference, strings.Join(path, " -> "), desc.name)
		}

		target, ok := lookup(desc.name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrUnresolvedReference, desc.name)
		}

		return resolve(target, lookup, append(slices.Clone(path), desc.name))
	case *Placeholder:
		constraints, err := resolveAll(desc.constraints, lookup, path)
		if err != nil {
			return nil, err
		}

		return TypeVar(desc.name, constraints...), nil
	case *Disjunction:
		alternatives, err := resolveAll(desc.alternatives, lookup, path)
		if err != nil {
			return nil, err
		}

		// Rebuild so that aliases expanding to unions are flattened too.
		return Union(alternatives...), nil
	case *Sequence:
		elements, err := resolveAll(desc.elements, lookup, path)
		if err != nil {
			return nil, err
		}

		return Tuple(elements...), nil
	case *Container:
		params, err := resolveAll(desc.params, lookup, path)
		if err != nil {
			return nil, err
		}

		resolved := *desc
		resolved.params = params

		return &resolved, nil
	default:
		return d, nil
	}
}

func resolveAll(ds []Descriptor, lookup lookupFunc, path []string) ([]Descriptor, error) {
	out := make([]Descriptor, len(ds))

	for i, d := range ds {
		resolved, err := resolve(d, lookup, path)
		if err != nil {
			return nil, err
		}

		out[i] = resolved
	}

	return out, nil
}
