package typedesc

import "fmt"

// Registry maps class names to their descriptors. It is not safe for
// concurrent mutation; populate it during runtime init.
type Registry struct {
	types map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Define adds t to the registry. Defining two types with the same name is
// an error.
func (r *Registry) Define(t *Type) error {
	if _, ok := r.types[t.name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.name)
	}
	r.types[t.name] = t
	return nil
}

// Lookup returns the descriptor for name, or nil when it is not defined.
func (r *Registry) Lookup(name string) *Type {
	return r.types[name]
}

// LookupNative resolves a raw native class name (NUL-terminated Latin-1,
// as handed over by foreign runtimes) to its descriptor.
func (r *Registry) LookupNative(raw []byte) (*Type, error) {
	name, err := DecodeName(raw)
	if err != nil {
		return nil, err
	}
	t := r.types[name]
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// Len returns the number of defined types.
func (r *Registry) Len() int {
	return len(r.types)
}
